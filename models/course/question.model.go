package course

import (
	"time"

	"gorm.io/datatypes"
)

// QuestionOption is one answer choice. Options are ordered by array position
// and are always replaced as a whole.
type QuestionOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuizQuestion belongs to a quiz. Exactly one option is correct.
type QuizQuestion struct {
	ID        uint                                `json:"id" gorm:"primaryKey"`
	QuizID    uint                                `json:"quiz_id" gorm:"index;not null"`
	Question  string                              `json:"question" gorm:"type:text;not null"`
	Options   datatypes.JSONSlice[QuestionOption] `json:"options"`
	CreatedAt time.Time                           `json:"created_at"`
	UpdatedAt time.Time                           `json:"updated_at"`
}

func (QuizQuestion) TableName() string { return "quiz_questions" }

// CorrectCount returns how many options are flagged correct
func (q QuizQuestion) CorrectCount() int {
	n := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}
