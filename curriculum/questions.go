package curriculum

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// QuestionEditor edits the questions of one quiz
type QuestionEditor struct {
	m      *Manager
	quizID uint

	mu        sync.RWMutex
	questions []Question
}

// Questions returns an editor for the questions of quizID. Call Load first.
func (m *Manager) Questions(quizID uint) *QuestionEditor {
	return &QuestionEditor{m: m, quizID: quizID}
}

// QuizID returns the quiz being edited
func (e *QuestionEditor) QuizID() uint { return e.quizID }

// List returns the loaded questions
func (e *QuestionEditor) List() []Question {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Question, len(e.questions))
	for i, q := range e.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

// Load fetches the quiz's questions from the server
func (e *QuestionEditor) Load(ctx context.Context) error {
	if e.m.isClosed() {
		return ErrClosed
	}

	questions, err := e.m.backend.ListQuestions(ctx, e.quizID)
	if err != nil {
		return &RequestError{Op: fmt.Sprintf("list questions of quiz %d", e.quizID), Err: err}
	}
	if err := e.m.guard(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	e.questions = questions
	e.mu.Unlock()
	return nil
}

// Add validates the draft locally and creates the question. Nothing is sent
// unless the text and every option are filled and exactly one option is correct.
func (e *QuestionEditor) Add(ctx context.Context, draft *QuestionDraft) (Question, error) {
	if e.m.isClosed() {
		return Question{}, ErrClosed
	}

	q := draft.question()
	q.ID = 0
	q.QuizID = e.quizID
	if err := checkQuestion(e.m.validate, &q); err != nil {
		return Question{}, err
	}

	created, err := e.m.backend.CreateQuestion(ctx, e.quizID, q)
	if err != nil {
		return Question{}, &RequestError{Op: fmt.Sprintf("create question in quiz %d", e.quizID), Err: err}
	}
	draft.ID = created.ID
	return created, e.Load(ctx)
}

// BeginEdit fetches the full question into a draft
func (e *QuestionEditor) BeginEdit(ctx context.Context, questionID uint) (*QuestionDraft, error) {
	if e.m.isClosed() {
		return nil, ErrClosed
	}

	q, err := e.m.backend.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, &RequestError{Op: fmt.Sprintf("get question %d", questionID), Err: err}
	}
	if q.QuizID != e.quizID {
		return nil, fmt.Errorf("%w: question %d is in quiz %d, not %d", ErrWrongQuiz, q.ID, q.QuizID, e.quizID)
	}
	return &QuestionDraft{
		ID:       q.ID,
		Question: q.Question,
		Options:  append([]Option(nil), q.Options...),
	}, nil
}

// SubmitEdit replaces the question text and its whole option list
func (e *QuestionEditor) SubmitEdit(ctx context.Context, draft *QuestionDraft) (Question, error) {
	if e.m.isClosed() {
		return Question{}, ErrClosed
	}
	if draft.ID == 0 {
		return Question{}, invalid("id", "draft was not loaded with BeginEdit")
	}

	q := draft.question()
	q.QuizID = e.quizID
	if err := checkQuestion(e.m.validate, &q); err != nil {
		return Question{}, err
	}

	updated, err := e.m.backend.UpdateQuestion(ctx, q)
	if err != nil {
		return Question{}, &RequestError{Op: fmt.Sprintf("update question %d", q.ID), Err: err}
	}
	return updated, e.Load(ctx)
}

// Delete removes a question after confirmation and reloads the list
func (e *QuestionEditor) Delete(ctx context.Context, questionID uint) error {
	if e.m.isClosed() {
		return ErrClosed
	}

	if !e.m.confirmed(ctx, "Delete this question and its options? This cannot be undone.") {
		return ErrNotConfirmed
	}

	if err := e.m.backend.DeleteQuestion(ctx, questionID); err != nil {
		return &RequestError{Op: fmt.Sprintf("delete question %d", questionID), Err: err}
	}
	return e.Load(ctx)
}

// QuestionDraft is a question being written or edited. ID is zero until saved.
type QuestionDraft struct {
	ID       uint
	Question string
	Options  []Option
}

// NewQuestionDraft starts a question with the given options
func NewQuestionDraft(text string, options ...Option) *QuestionDraft {
	return &QuestionDraft{Question: text, Options: append([]Option(nil), options...)}
}

// AddOption appends an option that is not marked correct
func (d *QuestionDraft) AddOption(text string) {
	d.Options = append(d.Options, Option{Text: text})
}

// RemoveOption deletes option i
func (d *QuestionDraft) RemoveOption(i int) error {
	if i < 0 || i >= len(d.Options) {
		return ErrIndexOutOfRange
	}
	d.Options = append(d.Options[:i], d.Options[i+1:]...)
	return nil
}

// SelectCorrect marks option i as the only correct one
func (d *QuestionDraft) SelectCorrect(i int) error {
	if i < 0 || i >= len(d.Options) {
		return ErrIndexOutOfRange
	}
	for j := range d.Options {
		d.Options[j].IsCorrect = j == i
	}
	return nil
}

// Correct returns the index of the correct option, or -1 when there is not exactly one
func (d *QuestionDraft) Correct() int {
	found := -1
	for i, o := range d.Options {
		if o.IsCorrect {
			if found >= 0 {
				return -1
			}
			found = i
		}
	}
	return found
}

// question builds the trimmed payload
func (d *QuestionDraft) question() Question {
	q := Question{
		ID:       d.ID,
		Question: strings.TrimSpace(d.Question),
		Options:  make([]Option, len(d.Options)),
	}
	for i, o := range d.Options {
		q.Options[i] = Option{Text: strings.TrimSpace(o.Text), IsCorrect: o.IsCorrect}
	}
	return q
}

func cloneQuestion(q Question) Question {
	q.Options = append([]Option(nil), q.Options...)
	return q
}
