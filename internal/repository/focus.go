package repository

import (
	"context"
	"time"

	"codehub/internal/cache"
	"codehub/internal/models"

	"gorm.io/gorm"
)

// FocusSessionRepository defines persistence operations for focus sessions.
// Sessions are append-only; there is no update or delete.
type FocusSessionRepository interface {
	Create(ctx context.Context, session *models.FocusSession) error
	ListByUser(ctx context.Context, userID uint) ([]models.FocusSession, error)
	MinutesPerDay(ctx context.Context, userID uint, since time.Time, tz string) (map[string]int64, error)
}

type focusSessionRepository struct {
	db *gorm.DB
}

// NewFocusSessionRepository returns a new FocusSessionRepository implementation.
func NewFocusSessionRepository(db *gorm.DB) FocusSessionRepository {
	return &focusSessionRepository{db: db}
}

func (r *focusSessionRepository) Create(ctx context.Context, session *models.FocusSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *focusSessionRepository) ListByUser(ctx context.Context, userID uint) ([]models.FocusSession, error) {
	var sessions []models.FocusSession
	err := cache.Aside(ctx, cache.FocusHistoryKey(userID), &sessions, cache.FocusHistoryTTL, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("logged_at DESC").
			Find(&sessions).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return sessions, nil
}

// MinutesPerDay returns summed session minutes keyed by "YYYY-MM-DD", bucketed
// in the given timezone.
func (r *focusSessionRepository) MinutesPerDay(ctx context.Context, userID uint, since time.Time, tz string) (map[string]int64, error) {
	var rows []dayCount
	err := r.db.WithContext(ctx).
		Model(&models.FocusSession{}).
		Select("to_char(logged_at AT TIME ZONE ?, 'YYYY-MM-DD') AS day, COALESCE(SUM(duration_minutes), 0) AS count", tz).
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Day] = row.Count
	}
	return out, nil
}
