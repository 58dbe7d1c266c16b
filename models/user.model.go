package models

import (
	"gorm.io/gorm"
)

// User roles allowed to edit curricula
const (
	RoleAdmin      = "ADMIN"
	RoleInstructor = "INSTRUCTOR"
)

// User is the account behind a bearer token. Sign-up and login live in the
// identity service; this table only backs role checks.
type User struct {
	gorm.Model
	Name      string `gorm:"default:''"`
	Email     string `gorm:"unique;not null"`
	Role      string `gorm:"default:'USER'"` // USER, INSTRUCTOR, ADMIN
	IsBlocked bool   `gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`
}

// CanEditCurriculum reports whether the user may change sections and content
func (u User) CanEditCurriculum() bool {
	if u.IsBlocked || u.IsDeleted {
		return false
	}
	return u.Role == RoleAdmin || u.Role == RoleInstructor
}
