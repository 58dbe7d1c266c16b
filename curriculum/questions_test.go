package curriculum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddQuestionWithOneCorrectOption(t *testing.T) {
	f := newFakeBackend()
	m := newTestManager(f)
	editor := m.Questions(12)

	draft := NewQuestionDraft("2+2=?", Option{Text: "3"}, Option{Text: "4", IsCorrect: true})
	created, err := editor.Add(context.Background(), draft)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, created.ID, draft.ID)

	list := editor.List()
	require.Len(t, list, 1)
	assert.Equal(t, "2+2=?", list[0].Question)
	var correct []string
	for _, o := range list[0].Options {
		if o.IsCorrect {
			correct = append(correct, o.Text)
		}
	}
	assert.Equal(t, []string{"4"}, correct)
}

func TestAddQuestionRejectedBeforeAnyRequest(t *testing.T) {
	f := newFakeBackend()
	m := newTestManager(f)
	editor := m.Questions(12)

	cases := []struct {
		name  string
		draft *QuestionDraft
		field string
	}{
		{"no correct option", NewQuestionDraft("2+2=?", Option{Text: "3"}, Option{Text: "4"}), "options"},
		{"two correct options", NewQuestionDraft("2+2=?", Option{Text: "4", IsCorrect: true}, Option{Text: "four", IsCorrect: true}), "options"},
		{"no options", NewQuestionDraft("2+2=?"), "options"},
		{"blank question", NewQuestionDraft("  ", Option{Text: "4", IsCorrect: true}), "question"},
		{"blank option", NewQuestionDraft("2+2=?", Option{Text: " ", IsCorrect: true}), "options[0].text"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := editor.Add(context.Background(), tc.draft)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
	assert.Zero(t, countCalls(f.Calls(), "CreateQuestion"))
}

func TestSelectCorrectIsExclusive(t *testing.T) {
	draft := NewQuestionDraft("Pick one", Option{Text: "a", IsCorrect: true}, Option{Text: "b"}, Option{Text: "c", IsCorrect: true})
	assert.Equal(t, -1, draft.Correct())

	require.NoError(t, draft.SelectCorrect(1))
	assert.Equal(t, 1, draft.Correct())
	assert.False(t, draft.Options[0].IsCorrect)
	assert.False(t, draft.Options[2].IsCorrect)

	assert.ErrorIs(t, draft.SelectCorrect(3), ErrIndexOutOfRange)
	assert.Equal(t, 1, draft.Correct())

	draft.AddOption("d")
	require.NoError(t, draft.RemoveOption(0))
	assert.Equal(t, []string{"b", "c", "d"}, []string{draft.Options[0].Text, draft.Options[1].Text, draft.Options[2].Text})
	assert.Equal(t, 0, draft.Correct())
	assert.ErrorIs(t, draft.RemoveOption(5), ErrIndexOutOfRange)
}

func TestEditQuestionReplacesOptions(t *testing.T) {
	f := newFakeBackend()
	f.questions[50] = Question{ID: 50, QuizID: 12, Question: "2+2=?", Options: []Option{{Text: "3"}, {Text: "4", IsCorrect: true}}}
	m := newTestManager(f)
	editor := m.Questions(12)
	require.NoError(t, editor.Load(context.Background()))

	draft, err := editor.BeginEdit(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 1, draft.Correct())

	draft.Question = "2+1=?"
	draft.AddOption("5")
	require.NoError(t, draft.SelectCorrect(0))

	_, err = editor.SubmitEdit(context.Background(), draft)
	require.NoError(t, err)

	stored := f.questions[50]
	assert.Equal(t, "2+1=?", stored.Question)
	assert.Equal(t, []Option{{Text: "3", IsCorrect: true}, {Text: "4"}, {Text: "5"}}, stored.Options)
	assert.Equal(t, "2+1=?", editor.List()[0].Question)

	// Editing the draft after submit does not touch the loaded list
	draft.Options[0].Text = "changed"
	assert.Equal(t, "3", editor.List()[0].Options[0].Text)
}

func TestEditQuestionKeepsInvariant(t *testing.T) {
	f := newFakeBackend()
	f.questions[50] = Question{ID: 50, QuizID: 12, Question: "2+2=?", Options: []Option{{Text: "3"}, {Text: "4", IsCorrect: true}}}
	m := newTestManager(f)
	editor := m.Questions(12)

	draft, err := editor.BeginEdit(context.Background(), 50)
	require.NoError(t, err)
	draft.Options[0].IsCorrect = true

	_, err = editor.SubmitEdit(context.Background(), draft)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, countCalls(f.Calls(), "UpdateQuestion"))

	_, err = editor.SubmitEdit(context.Background(), NewQuestionDraft("new", Option{Text: "x", IsCorrect: true}))
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "id")
}

func TestDeleteQuestion(t *testing.T) {
	f := newFakeBackend()
	f.questions[50] = Question{ID: 50, QuizID: 12, Question: "2+2=?", Options: []Option{{Text: "4", IsCorrect: true}}}
	f.questions[51] = Question{ID: 51, QuizID: 12, Question: "3+3=?", Options: []Option{{Text: "6", IsCorrect: true}}}

	unconfirmed := newTestManager(f).Questions(12)
	assert.ErrorIs(t, unconfirmed.Delete(context.Background(), 50), ErrNotConfirmed)
	assert.Zero(t, countCalls(f.Calls(), "DeleteQuestion"))

	editor := newTestManager(f, alwaysConfirm()).Questions(12)
	require.NoError(t, editor.Load(context.Background()))
	require.NoError(t, editor.Delete(context.Background(), 50))

	list := editor.List()
	require.Len(t, list, 1)
	assert.Equal(t, uint(51), list[0].ID)
}

func TestBeginEditRejectsQuestionOfAnotherQuiz(t *testing.T) {
	f := newFakeBackend()
	f.questions[50] = Question{ID: 50, QuizID: 99, Question: "2+2=?", Options: []Option{{Text: "4", IsCorrect: true}}}
	m := newTestManager(f)
	editor := m.Questions(12)

	draft, err := editor.BeginEdit(context.Background(), 50)
	assert.ErrorIs(t, err, ErrWrongQuiz)
	assert.Nil(t, draft)
}
