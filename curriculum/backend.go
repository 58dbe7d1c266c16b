package curriculum

import "context"

// SectionAPI manages the sections of a course
type SectionAPI interface {
	ListSections(ctx context.Context, courseID uint) ([]Section, error)
	CreateSection(ctx context.Context, courseID uint, section Section) (Section, error)
	PatchSection(ctx context.Context, sectionID uint, patch SectionPatch) (Section, error)
	DeleteSection(ctx context.Context, sectionID uint) error
}

// ContentAPI manages lessons, quizzes and assignments. ReorderContent must
// apply the whole batch or nothing.
type ContentAPI interface {
	ListContent(ctx context.Context, sectionID uint, t ContentType) ([]ContentItem, error)
	CreateContent(ctx context.Context, item ContentItem) (ContentItem, error)
	GetContent(ctx context.Context, t ContentType, id uint) (ContentItem, error)
	UpdateContent(ctx context.Context, item ContentItem) (ContentItem, error)
	DeleteContent(ctx context.Context, t ContentType, id uint) error
	SetPublished(ctx context.Context, t ContentType, id uint, published bool) (ContentItem, error)
	ReorderContent(ctx context.Context, sectionID uint, batch []OrderEntry) error
}

// QuestionAPI manages the questions of a quiz
type QuestionAPI interface {
	ListQuestions(ctx context.Context, quizID uint) ([]Question, error)
	CreateQuestion(ctx context.Context, quizID uint, q Question) (Question, error)
	GetQuestion(ctx context.Context, questionID uint) (Question, error)
	UpdateQuestion(ctx context.Context, q Question) (Question, error)
	DeleteQuestion(ctx context.Context, questionID uint) error
}

// InstructorAPI reads instructors and links one to a course
type InstructorAPI interface {
	ListInstructors(ctx context.Context) ([]Instructor, error)
	GetCourse(ctx context.Context, courseID uint) (Course, error)
	AssignInstructor(ctx context.Context, courseID, instructorID uint) (Course, error)
}

// Backend is everything the manager needs from the server
type Backend interface {
	SectionAPI
	ContentAPI
	QuestionAPI
	InstructorAPI
}

// Confirmer asks the user to approve an irreversible action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }
