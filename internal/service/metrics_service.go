package service

import (
	"context"
	"log/slog"
	"time"

	"codehub/internal/middleware"
	"codehub/internal/repository"
)

const (
	defaultVelocityDays = 7
	maxVelocityDays     = 90
	focusWindowDays     = 7

	dayLayout = "2006-01-02"
)

// VelocityPoint is one day of the task-completion series.
type VelocityPoint struct {
	Date           string `json:"date"`
	TasksCompleted int64  `json:"tasks_completed"`
}

// FocusPoint is one day of the focus-minutes series.
type FocusPoint struct {
	Date         string `json:"date"`
	TotalMinutes int64  `json:"total_minutes"`
}

// MetricsService produces dense per-day chart series. Charts require every day
// of the window to be present: a day without data is a zero entry, never a gap.
type MetricsService struct {
	taskRepo  repository.TaskRepository
	focusRepo repository.FocusSessionRepository
	location  *time.Location

	// now is swappable for tests.
	now func() time.Time
}

// NewMetricsService returns a MetricsService bucketing days in the given location.
func NewMetricsService(taskRepo repository.TaskRepository, focusRepo repository.FocusSessionRepository, location *time.Location) *MetricsService {
	return &MetricsService{
		taskRepo:  taskRepo,
		focusRepo: focusRepo,
		location:  location,
		now:       time.Now,
	}
}

// Velocity returns task completions per day over a trailing window ending
// today, oldest first. On a query failure it degrades to an all-zero series so
// chart rendering never breaks on a transient persistence error.
func (s *MetricsService) Velocity(ctx context.Context, userID uint, windowDays int) []VelocityPoint {
	if windowDays <= 0 {
		windowDays = defaultVelocityDays
	}
	if windowDays > maxVelocityDays {
		windowDays = maxVelocityDays
	}

	spine := s.dateSpine(windowDays)
	since := s.windowStart(windowDays)

	counts, err := s.taskRepo.CompletedPerDay(ctx, userID, since, s.location.String())
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "velocity query failed, returning zero-filled series",
			slog.Any("user_id", userID),
			slog.String("error", err.Error()),
		)
		counts = nil
	}

	series := make([]VelocityPoint, len(spine))
	for i, day := range spine {
		series[i] = VelocityPoint{Date: day, TasksCompleted: counts[day]}
	}
	return series
}

// FocusByDay returns summed focus minutes per day over a fixed trailing 7-day
// window, oldest first, zero-filled like Velocity.
func (s *MetricsService) FocusByDay(ctx context.Context, userID uint) []FocusPoint {
	spine := s.dateSpine(focusWindowDays)
	since := s.windowStart(focusWindowDays)

	minutes, err := s.focusRepo.MinutesPerDay(ctx, userID, since, s.location.String())
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "focus query failed, returning zero-filled series",
			slog.Any("user_id", userID),
			slog.String("error", err.Error()),
		)
		minutes = nil
	}

	series := make([]FocusPoint, len(spine))
	for i, day := range spine {
		series[i] = FocusPoint{Date: day, TotalMinutes: minutes[day]}
	}
	return series
}

// dateSpine generates the window's day labels [today-(n-1) .. today] ascending.
func (s *MetricsService) dateSpine(windowDays int) []string {
	today := s.now().In(s.location)
	spine := make([]string, windowDays)
	for i := 0; i < windowDays; i++ {
		spine[i] = today.AddDate(0, 0, i-(windowDays-1)).Format(dayLayout)
	}
	return spine
}

// windowStart is the midnight opening the window, in the configured location.
func (s *MetricsService) windowStart(windowDays int) time.Time {
	today := s.now().In(s.location)
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.location)
	return midnight.AddDate(0, 0, -(windowDays - 1))
}
