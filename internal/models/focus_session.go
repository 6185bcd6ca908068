package models

import (
	"time"
)

// FocusSession is one logged Pomodoro-style work interval.
// Sessions are append-only: the API never updates or deletes them.
type FocusSession struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	LoggedAt        time.Time `gorm:"index;not null" json:"logged_at"`
	CreatedAt       time.Time `json:"created_at"`
}
