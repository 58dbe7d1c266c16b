package course

import (
	"time"

	"gorm.io/gorm"
)

// Content kinds. Each kind lives in its own table; the kind of a row never changes.
const (
	KindLesson     = "lesson"
	KindQuiz       = "quiz"
	KindAssignment = "assignment"
)

// ContentKinds lists every kind in merge order
var ContentKinds = []string{KindLesson, KindQuiz, KindAssignment}

// IsContentKind reports whether kind names a content table
func IsContentKind(kind string) bool {
	for _, k := range ContentKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ContentBase holds the columns shared by lessons, quizzes and assignments.
// SortOrder is unique across all three kinds within one section.
type ContentBase struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SectionID   uint      `json:"section_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Duration    *int      `json:"duration"` // minutes
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContentRecord is implemented by every content table model
type ContentRecord interface {
	Base() *ContentBase
	Kind() string
}

// Lesson is a readable or watchable unit
type Lesson struct {
	ContentBase
	Body     string `json:"body" gorm:"type:text"`
	VideoURL string `json:"video_url"`
}

func (Lesson) TableName() string { return "lessons" }
func (l *Lesson) Base() *ContentBase { return &l.ContentBase }
func (l *Lesson) Kind() string { return KindLesson }

// Quiz groups quiz questions
type Quiz struct {
	ContentBase
	PassScore int `json:"pass_score" gorm:"default:0"` // percent
}

func (Quiz) TableName() string { return "quizzes" }
func (q *Quiz) Base() *ContentBase { return &q.ContentBase }
func (q *Quiz) Kind() string { return KindQuiz }

// Assignment is graded work handed in by students
type Assignment struct {
	ContentBase
	Instructions string `json:"instructions" gorm:"type:text"`
	MaxScore     int    `json:"max_score" gorm:"default:0"`
}

func (Assignment) TableName() string { return "assignments" }
func (a *Assignment) Base() *ContentBase { return &a.ContentBase }
func (a *Assignment) Kind() string { return KindAssignment }

// NewRecord returns an empty model for kind, or nil for an unknown kind
func NewRecord(kind string) ContentRecord {
	switch kind {
	case KindLesson:
		return &Lesson{}
	case KindQuiz:
		return &Quiz{}
	case KindAssignment:
		return &Assignment{}
	}
	return nil
}

// FindRecords loads every row of kind in a section, in display order
func FindRecords(db *gorm.DB, kind string, sectionID uint) (interface{}, error) {
	var rows interface{}
	switch kind {
	case KindLesson:
		rows = &[]Lesson{}
	case KindQuiz:
		rows = &[]Quiz{}
	case KindAssignment:
		rows = &[]Assignment{}
	default:
		return nil, gorm.ErrInvalidData
	}
	if err := db.Where("section_id = ?", sectionID).Order("sort_order asc, id asc").Find(rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
