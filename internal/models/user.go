// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered CodeHub user.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tasks         []Task         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Snippets      []Snippet      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	FocusSessions []FocusSession `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Achievements  []Achievement  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
