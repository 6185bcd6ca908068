package models

import (
	"time"

	"github.com/lib/pq"
)

// Snippet is a saved piece of code in a user's library.
// Updates overwrite in place; there is no version history.
type Snippet struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Title     string         `gorm:"not null;default:Snippet" json:"title"`
	Code      string         `gorm:"type:text" json:"code"`
	Language  string         `gorm:"not null;default:javascript" json:"language"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
