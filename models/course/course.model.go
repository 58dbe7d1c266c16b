package course

import "time"

// Course owns an ordered list of sections. Courses are never deleted from the curriculum editor.
type Course struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Title        string      `json:"title" gorm:"not null"`
	Description  string      `json:"description"`
	InstructorID *uint       `json:"instructor_id" gorm:"index"`
	Instructor   *Instructor `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	IsPublished  bool        `json:"is_published" gorm:"default:false"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Instructor is read-only here apart from being linked to a course
type Instructor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Image     string    `json:"image"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
