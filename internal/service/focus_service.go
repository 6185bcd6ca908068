package service

import (
	"context"
	"time"

	"codehub/internal/cache"
	"codehub/internal/models"
	"codehub/internal/repository"
)

// Focus session duration limits in minutes. The upper bound keeps a typo from
// recording a week-long "session".
const (
	minSessionMinutes = 1
	maxSessionMinutes = 240
)

// FocusService implements focus-session logging.
type FocusService struct {
	focusRepo repository.FocusSessionRepository
}

// CreateFocusSessionInput carries the fields accepted when logging a session.
// LoggedAt may backfill a past timestamp; zero means "now".
type CreateFocusSessionInput struct {
	UserID          uint
	DurationMinutes int
	LoggedAt        time.Time
}

// NewFocusService returns a FocusService backed by the given repository.
func NewFocusService(focusRepo repository.FocusSessionRepository) *FocusService {
	return &FocusService{focusRepo: focusRepo}
}

func (s *FocusService) CreateSession(ctx context.Context, in CreateFocusSessionInput) (*models.FocusSession, error) {
	if in.DurationMinutes < minSessionMinutes || in.DurationMinutes > maxSessionMinutes {
		return nil, models.NewValidationError("Duration must be between 1 and 240 minutes")
	}

	loggedAt := in.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	session := &models.FocusSession{
		UserID:          in.UserID,
		DurationMinutes: in.DurationMinutes,
		LoggedAt:        loggedAt,
	}
	if err := s.focusRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	cache.InvalidateUserActivity(ctx, in.UserID)
	return session, nil
}

func (s *FocusService) ListSessions(ctx context.Context, userID uint) ([]models.FocusSession, error) {
	return s.focusRepo.ListByUser(ctx, userID)
}
