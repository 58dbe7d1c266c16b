package curriculum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContentRefreshesSection(t *testing.T) {
	f := newFakeBackend()
	introSection(f)
	m := newTestManager(f)
	require.NoError(t, m.Load(context.Background()))

	minutes := 15
	created, err := m.CreateContent(context.Background(), ContentItem{
		Type:        TypeAssignment,
		SectionID:   1,
		Title:       " Project ",
		Duration:    &minutes,
		IsPublished: true,
		Assignment:  &AssignmentDetail{Instructions: "Build it", MaxScore: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, "Project", created.Title)
	assert.False(t, created.IsPublished)

	content := m.Store().Content(1)
	require.Len(t, content, 5)
	assert.Equal(t, created.Key(), content[4].Key())
	assert.Equal(t, 4, content[4].SortOrder)
}

func TestCreateContentValidatesLocally(t *testing.T) {
	f := newFakeBackend()
	introSection(f)
	m := newTestManager(f)
	require.NoError(t, m.Load(context.Background()))

	var verr *ValidationError
	_, err := m.CreateContent(context.Background(), ContentItem{Type: TypeLesson, Title: "No parent"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "section_id")

	_, err = m.CreateContent(context.Background(), ContentItem{Type: "video", SectionID: 1, Title: "Clip"})
	assert.ErrorIs(t, err, ErrUnknownContentType)

	negative := -5
	_, err = m.CreateContent(context.Background(), ContentItem{
		Type:      TypeLesson,
		SectionID: 1,
		Title:     "",
		Duration:  &negative,
		Lesson:    &LessonDetail{VideoURL: "not a url"},
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "duration")
	assert.Contains(t, verr.Fields, "lesson.video_url")

	_, err = m.CreateContent(context.Background(), ContentItem{
		Type:      TypeQuiz,
		SectionID: 1,
		Title:     "Too hard",
		Quiz:      &QuizDetail{PassScore: 150},
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "quiz.pass_score")

	assert.Zero(t, countCalls(f.Calls(), "CreateContent"))
}

func TestCreateContentDropsForeignPayload(t *testing.T) {
	f := newFakeBackend()
	introSection(f)
	m := newTestManager(f)
	require.NoError(t, m.Load(context.Background()))

	created, err := m.CreateContent(context.Background(), ContentItem{
		Type:      TypeQuiz,
		SectionID: 1,
		Title:     "Checkpoint",
		Lesson:    &LessonDetail{Body: "ignored"},
	})
	require.NoError(t, err)
	assert.Nil(t, created.Lesson)
	require.NotNil(t, created.Quiz)
}

func TestEditFetchesFullRecordFirst(t *testing.T) {
	f := newFakeBackend()
	introSection(f)
	f.items["lesson:11"] = ContentItem{
		ID: 11, Type: TypeLesson, SectionID: 1, Title: "Welcome", SortOrder: 0,
		Lesson: &LessonDetail{Body: "Hello there", VideoURL: "https://videos.example.com/1.mp4"},
	}
	m := newTestManager(f)
	require.NoError(t, m.Load(context.Background()))

	// The list view has no payload
	summary := m.Store().Content(1)[0]
	assert.Nil(t, summary.Lesson)

	draft, err := m.BeginContentEdit(context.Background(), TypeLesson, 11)
	require.NoError(t, err)
	require.NotNil(t, draft.Lesson)
	assert.Equal(t, "Hello there", draft.Lesson.Body)

	draft.Title = "Welcome aboard"
	draft.Lesson.Body = "Hello again"
	updated, err := m.SubmitContentEdit(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "Welcome aboard", updated.Title)

	// The complete record reached the server, not just the changed field
	stored := f.items["lesson:11"]
	assert.Equal(t, "Hello again", stored.Lesson.Body)
	assert.Equal(t, "https://videos.example.com/1.mp4", stored.Lesson.VideoURL)
	assert.Equal(t, "Welcome aboard", m.Store().Content(1)[0].Title)

	_, err = m.SubmitContentEdit(context.Background(), ContentItem{Type: TypeLesson, SectionID: 1, Title: "x"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteContentNeedsConfirmation(t *testing.T) {
	f := newFakeBackend()
	introSection(f)
	m := newTestManager(f)
	require.NoError(t, m.Load(context.Background()))
	quiz := m.Store().Content(1)[1]

	assert.ErrorIs(t, m.DeleteContent(context.Background(), quiz), ErrNotConfirmed)
	assert.Zero(t, countCalls(f.Calls(), "DeleteContent"))

	confirmed := newTestManager(f, alwaysConfirm())
	require.NoError(t, confirmed.Load(context.Background()))
	require.NoError(t, confirmed.DeleteContent(context.Background(), quiz))
	assert.Equal(t, []string{"lesson:11", "assignment:13", "lesson:14"}, keys(confirmed.Store().Content(1)))
}

func TestSetPublished(t *testing.T) {
	f := newFakeBackend()
	introSection(f)
	m := newTestManager(f)
	require.NoError(t, m.Load(context.Background()))

	require.NoError(t, m.SetPublished(context.Background(), m.Store().Content(1)[0], true))
	assert.True(t, m.Store().Content(1)[0].IsPublished)

	err := m.SetPublished(context.Background(), ContentItem{ID: 1, Type: "video"}, true)
	assert.ErrorIs(t, err, ErrUnknownContentType)
}

func TestAssignInstructor(t *testing.T) {
	f := newFakeBackend()
	f.instructors = []Instructor{{ID: 7, Name: "Ada"}}
	m := newTestManager(f)

	instructors, err := m.Instructors(context.Background())
	require.NoError(t, err)
	assert.Len(t, instructors, 1)

	course, err := m.AssignInstructor(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, course.Instructor)
	assert.Equal(t, "Ada", course.Instructor.Name)

	_, err = m.AssignInstructor(context.Background(), 8)
	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)

	_, err = m.AssignInstructor(context.Background(), 0)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	got, err := m.Course(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(7), *got.InstructorID)
}

func TestSubmitEditKeepsPositionSetByReorder(t *testing.T) {
	ctx := context.Background()
	f, m := threeLessons(t)

	draft, err := m.BeginContentEdit(ctx, TypeLesson, 1)
	require.NoError(t, err)
	require.NoError(t, m.OnReorder(ctx, 1, 0, 2))

	draft.Title = "L1 renamed"
	_, err = m.SubmitContentEdit(ctx, draft)
	require.NoError(t, err)

	assert.Equal(t, []string{"L2", "L3", "L1 renamed"}, titles(m.Store().Content(1)))
	assert.Equal(t, 2, f.items["lesson:1"].SortOrder)
}
