package models

import (
	"time"
)

// Task status constants
const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"
)

// Task priority constants
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a single to-do item owned by a user.
//
// CompletedAt is governed by one rule: it is stamped when Status transitions
// into "done", cleared when Status transitions out of "done", and left alone
// while Status stays "done".
type Task struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `json:"description"`
	Status          string     `gorm:"not null;default:todo" json:"status"`
	Priority        string     `gorm:"not null;default:medium" json:"priority"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	EstimateMinutes int        `json:"estimate_minutes"`
	SpentMinutes    int        `json:"spent_minutes"`
	CompletedAt     *time.Time `gorm:"index" json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ValidTaskStatus reports whether s is one of the known task statuses.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the known task priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
