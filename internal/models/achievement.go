package models

import (
	"time"
)

// Achievement is the persisted fact that a user unlocked one catalog entry.
// The composite unique index makes re-unlocking a no-op, which is the only
// concurrency guard the unlock path needs.
type Achievement struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	UserID        uint      `gorm:"uniqueIndex:idx_user_achievement;not null" json:"user_id"`
	AchievementID string    `gorm:"uniqueIndex:idx_user_achievement;not null" json:"achievement_id"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlocked_at"`
}
