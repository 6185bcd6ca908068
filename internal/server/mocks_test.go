package server

import (
	"context"
	"time"

	"codehub/internal/achievements"
	"codehub/internal/config"
	"codehub/internal/models"
	"codehub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

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

// MockSnippetRepository is a mock of the SnippetRepository interface
type MockSnippetRepository struct {
	mock.Mock
}

func (m *MockSnippetRepository) ListByUser(ctx context.Context, userID uint, search string) ([]models.Snippet, error) {
	args := m.Called(ctx, userID, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Snippet), args.Error(1)
}

func (m *MockSnippetRepository) GetByID(ctx context.Context, userID, id uint) (*models.Snippet, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Snippet), args.Error(1)
}

func (m *MockSnippetRepository) Create(ctx context.Context, snippet *models.Snippet) error {
	args := m.Called(ctx, snippet)
	return args.Error(0)
}

func (m *MockSnippetRepository) Update(ctx context.Context, snippet *models.Snippet) error {
	args := m.Called(ctx, snippet)
	return args.Error(0)
}

func (m *MockSnippetRepository) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
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

// testMocks bundles one mock per repository so tests can set expectations on
// whichever layer a handler touches.
type testMocks struct {
	users        *MockUserRepository
	tasks        *MockTaskRepository
	snippets     *MockSnippetRepository
	focus        *MockFocusSessionRepository
	achievements *MockAchievementRepository
}

// newTestServer wires a Server onto mock repositories.
func newTestServer() (*Server, *testMocks) {
	m := &testMocks{
		users:        new(MockUserRepository),
		tasks:        new(MockTaskRepository),
		snippets:     new(MockSnippetRepository),
		focus:        new(MockFocusSessionRepository),
		achievements: new(MockAchievementRepository),
	}

	s := &Server{
		config: &config.Config{
			JWTSecret:       "test_secret",
			MetricsTimezone: "UTC",
		},
		userRepo:        m.users,
		taskRepo:        m.tasks,
		snippetRepo:     m.snippets,
		focusRepo:       m.focus,
		achievementRepo: m.achievements,
	}
	s.userService = service.NewUserService(m.users)
	s.taskService = service.NewTaskService(m.tasks)
	s.snippetService = service.NewSnippetService(m.snippets)
	s.focusService = service.NewFocusService(m.focus)
	s.achievementService = service.NewAchievementService(m.achievements, "UTC")
	s.metricsService = service.NewMetricsService(m.tasks, m.focus, time.UTC)

	return s, m
}

// asUser is a middleware that injects an authenticated user ID, standing in
// for the JWT middleware in handler tests.
func asUser(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", id)
		return c.Next()
	}
}
