package service

import (
	"context"
	"time"

	"codehub/internal/achievements"
	"codehub/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTaskRepository is a mock of the TaskRepository interface
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) ListByUser(ctx context.Context, userID uint) ([]models.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, userID, id uint) (*models.Task, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockTaskRepository) CompletedPerDay(ctx context.Context, userID uint, since time.Time, tz string) (map[string]int64, error) {
	args := m.Called(ctx, userID, since, tz)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockFocusSessionRepository is a mock of the FocusSessionRepository interface
type MockFocusSessionRepository struct {
	mock.Mock
}

func (m *MockFocusSessionRepository) Create(ctx context.Context, session *models.FocusSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockFocusSessionRepository) ListByUser(ctx context.Context, userID uint) ([]models.FocusSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FocusSession), args.Error(1)
}

func (m *MockFocusSessionRepository) MinutesPerDay(ctx context.Context, userID uint, since time.Time, tz string) (map[string]int64, error) {
	args := m.Called(ctx, userID, since, tz)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockAchievementRepository is a mock of the AchievementRepository interface
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) ListByUser(ctx context.Context, userID uint) ([]models.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) UnlockedIDs(ctx context.Context, userID uint) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAchievementRepository) Unlock(ctx context.Context, userID uint, achievementID string) (bool, error) {
	args := m.Called(ctx, userID, achievementID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAchievementRepository) Stats(ctx context.Context, userID uint, tz string) (achievements.Stats, error) {
	args := m.Called(ctx, userID, tz)
	return args.Get(0).(achievements.Stats), args.Error(1)
}
