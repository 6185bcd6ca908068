package service

import (
	"context"
	"testing"
	"time"

	"codehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateSessionDurationBounds(t *testing.T) {
	mockRepo := new(MockFocusSessionRepository)
	svc := NewFocusService(mockRepo)
	ctx := context.Background()

	for _, minutes := range []int{0, -10, 241, 10000} {
		_, err := svc.CreateSession(ctx, CreateFocusSessionInput{UserID: 1, DurationMinutes: minutes})
		var appErr *models.AppError
		assert.ErrorAs(t, err, &appErr, "duration %d should be rejected", minutes)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSessionDefaultsLoggedAt(t *testing.T) {
	mockRepo := new(MockFocusSessionRepository)
	svc := NewFocusService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.FocusSession")).Return(nil)

	before := time.Now()
	session, err := svc.CreateSession(ctx, CreateFocusSessionInput{UserID: 1, DurationMinutes: 25})
	assert.NoError(t, err)
	assert.Equal(t, 25, session.DurationMinutes)
	assert.False(t, session.LoggedAt.Before(before))
	assert.False(t, session.LoggedAt.After(time.Now()))
}

func TestCreateSessionKeepsBackfilledTimestamp(t *testing.T) {
	mockRepo := new(MockFocusSessionRepository)
	svc := NewFocusService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.FocusSession")).Return(nil)

	past := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	session, err := svc.CreateSession(ctx, CreateFocusSessionInput{UserID: 1, DurationMinutes: 50, LoggedAt: past})
	assert.NoError(t, err)
	assert.True(t, session.LoggedAt.Equal(past))
}
