package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User is a merchandiser account allowed into the product editor.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	Theme        string `gorm:"type:varchar(32);default:linen"`
	LastLoginAt  *time.Time
}

// DisplayName is the name shown in the editor header, falling back to the email.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}
