package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an operator account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username            string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	PasswordHash        string    `gorm:"not null" json:"-"`
	Role                string    `gorm:"size:20;not null;default:'user'" json:"role"`
	ForcePasswordChange bool      `gorm:"default:false" json:"-"`
	CreatedAt           time.Time `json:"created_at"`
}

// ValidRole reports whether r is one of the two supported roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}
