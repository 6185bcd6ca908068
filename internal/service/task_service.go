// Package service implements business logic on top of the repository layer.
package service

import (
	"context"
	"time"

	"codehub/internal/cache"
	"codehub/internal/models"
	"codehub/internal/repository"
)

// TaskService implements task CRUD with the completion-timestamp contract:
// CompletedAt is stamped on a transition into "done", cleared on a transition
// out of "done", and untouched while the status stays "done".
type TaskService struct {
	taskRepo repository.TaskRepository
}

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	UserID          uint
	Title           string
	Description     string
	Status          string
	Priority        string
	DueDate         *time.Time
	EstimateMinutes int
}

// UpdateTaskInput carries a partial update; nil pointers leave fields unchanged.
type UpdateTaskInput struct {
	UserID          uint
	TaskID          uint
	Title           *string
	Description     *string
	Status          *string
	Priority        *string
	DueDate         *time.Time
	EstimateMinutes *int
	SpentMinutes    *int
}

// NewTaskService returns a TaskService backed by the given repository.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) ListTasks(ctx context.Context, userID uint) ([]models.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, userID, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*models.Task, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	status := in.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	if !models.ValidTaskStatus(status) {
		return nil, models.NewValidationError("Invalid status")
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, models.NewValidationError("Invalid priority")
	}

	if in.EstimateMinutes < 0 {
		return nil, models.NewValidationError("Estimate must not be negative")
	}

	task := &models.Task{
		UserID:          in.UserID,
		Title:           in.Title,
		Description:     in.Description,
		Status:          status,
		Priority:        priority,
		DueDate:         in.DueDate,
		EstimateMinutes: in.EstimateMinutes,
	}

	// A task can be created directly in "done" (quick-log flows do this);
	// that counts as a transition into done.
	applyStatusTransition(task, "", status, time.Now())

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	cache.InvalidateUserActivity(ctx, in.UserID)
	return task, nil
}

// UpdateTask applies a partial update. Returns the updated task and whether
// the update transitioned the task into "done" (the caller re-evaluates
// achievements only then).
func (s *TaskService) UpdateTask(ctx context.Context, in UpdateTaskInput) (*models.Task, bool, error) {
	task, err := s.taskRepo.GetByID(ctx, in.UserID, in.TaskID)
	if err != nil {
		return nil, false, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, false, models.NewValidationError("Title must not be empty")
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		if !models.ValidPriority(*in.Priority) {
			return nil, false, models.NewValidationError("Invalid priority")
		}
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.EstimateMinutes != nil {
		if *in.EstimateMinutes < 0 {
			return nil, false, models.NewValidationError("Estimate must not be negative")
		}
		task.EstimateMinutes = *in.EstimateMinutes
	}
	if in.SpentMinutes != nil {
		if *in.SpentMinutes < 0 {
			return nil, false, models.NewValidationError("Spent time must not be negative")
		}
		task.SpentMinutes = *in.SpentMinutes
	}

	becameDone := false
	if in.Status != nil {
		if !models.ValidTaskStatus(*in.Status) {
			return nil, false, models.NewValidationError("Invalid status")
		}
		becameDone = applyStatusTransition(task, task.Status, *in.Status, time.Now())
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, false, err
	}
	cache.InvalidateUserActivity(ctx, in.UserID)
	return task, becameDone, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint) error {
	if err := s.taskRepo.Delete(ctx, userID, taskID); err != nil {
		return err
	}
	cache.InvalidateUserActivity(ctx, userID)
	return nil
}

// applyStatusTransition sets task.Status to next and maintains CompletedAt.
// Reports whether the task transitioned into "done".
func applyStatusTransition(task *models.Task, prev, next string, now time.Time) bool {
	task.Status = next
	switch {
	case next == models.TaskStatusDone && prev != models.TaskStatusDone:
		task.CompletedAt = &now
		return true
	case next != models.TaskStatusDone && prev == models.TaskStatusDone:
		task.CompletedAt = nil
	}
	// Staying "done" keeps the original completion timestamp.
	return false
}
