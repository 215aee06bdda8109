package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a registered user. All transactions and uploads
// belong to exactly one user.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string `json:"-"`
}

// BeforeSave normalizes the email address so that lookups are
// case-insensitive.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	return nil
}
