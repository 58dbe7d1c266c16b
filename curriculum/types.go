package curriculum

import "fmt"

// ContentType discriminates the kinds of item a section can hold
type ContentType string

const (
	TypeLesson     ContentType = "lesson"
	TypeQuiz       ContentType = "quiz"
	TypeAssignment ContentType = "assignment"
)

// ContentTypes lists every kind in merge order
var ContentTypes = []ContentType{TypeLesson, TypeQuiz, TypeAssignment}

// rank orders kinds that share a sort order
func (t ContentType) rank() int {
	switch t {
	case TypeLesson:
		return 0
	case TypeQuiz:
		return 1
	case TypeAssignment:
		return 2
	}
	return len(ContentTypes)
}

// Valid reports whether t is a known kind
func (t ContentType) Valid() bool { return t.rank() < len(ContentTypes) }

// Course is the root of a curriculum
type Course struct {
	ID           uint        `json:"id"`
	Title        string      `json:"title"`
	InstructorID *uint       `json:"instructor_id"`
	Instructor   *Instructor `json:"instructor,omitempty"`
}

// Instructor can be linked to a course
type Instructor struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Title string `json:"title"`
}

// Section is an ordered group of content within a course
type Section struct {
	ID       uint   `json:"id"`
	CourseID uint   `json:"course_id"`
	Title    string `json:"title" validate:"required,max=200,excludesall=<>{}"`
	Order    int    `json:"order" validate:"min=0"`
}

// SectionPatch changes a section; nil fields are left alone
type SectionPatch struct {
	Title *string `json:"title,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// LessonDetail is the payload of a lesson
type LessonDetail struct {
	Body     string `json:"body"`
	VideoURL string `json:"video_url" validate:"omitempty,url"`
}

// QuizDetail is the payload of a quiz
type QuizDetail struct {
	PassScore int `json:"pass_score" validate:"min=0,max=100"`
}

// AssignmentDetail is the payload of an assignment
type AssignmentDetail struct {
	Instructions string `json:"instructions"`
	MaxScore     int    `json:"max_score" validate:"min=0"`
}

// ContentItem is one lesson, quiz or assignment. Type selects which payload
// pointer is set; the others are nil. List responses may carry only the
// common fields, so editing starts from a full fetch.
type ContentItem struct {
	ID          uint        `json:"id"`
	Type        ContentType `json:"type"`
	SectionID   uint        `json:"section_id" validate:"required"`
	Title       string      `json:"title" validate:"required,max=200,excludesall=<>{}"`
	Duration    *int        `json:"duration,omitempty" validate:"omitempty,min=0"`
	IsPublished bool        `json:"is_published"`
	SortOrder   int         `json:"sort_order" validate:"min=0"`

	Lesson     *LessonDetail     `json:"lesson,omitempty"`
	Quiz       *QuizDetail       `json:"quiz,omitempty"`
	Assignment *AssignmentDetail `json:"assignment,omitempty"`
}

// Key identifies an item across the three collections of a section
func (c ContentItem) Key() string { return fmt.Sprintf("%s:%d", c.Type, c.ID) }

// normalize makes sure exactly the payload matching Type is present
func (c *ContentItem) normalize() error {
	switch c.Type {
	case TypeLesson:
		if c.Lesson == nil {
			c.Lesson = &LessonDetail{}
		}
		c.Quiz, c.Assignment = nil, nil
	case TypeQuiz:
		if c.Quiz == nil {
			c.Quiz = &QuizDetail{}
		}
		c.Lesson, c.Assignment = nil, nil
	case TypeAssignment:
		if c.Assignment == nil {
			c.Assignment = &AssignmentDetail{}
		}
		c.Lesson, c.Quiz = nil, nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownContentType, c.Type)
	}
	return nil
}

// Option is one answer of a quiz question. Position in the list is its order.
type Option struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// Question belongs to a quiz and has exactly one correct option once saved
type Question struct {
	ID       uint     `json:"id"`
	QuizID   uint     `json:"quiz_id"`
	Question string   `json:"question" validate:"required"`
	Options  []Option `json:"options" validate:"required,min=1,dive"`
}

// OrderEntry is one row of a batch reorder
type OrderEntry struct {
	ID        uint        `json:"id"`
	Type      ContentType `json:"type"`
	SortOrder int         `json:"sort_order"`
}

// Move is a drop event from the drag source
type Move struct {
	SourceSection uint
	DestSection   uint
	Src           int
	Dst           int
}
