package course

import "time"

// Section is an ordered grouping of content items within a course.
// Deletes are hard deletes and cascade to the section's content.
type Section struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Order     int       `json:"order" gorm:"column:order_index;default:0"` // position in course
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
