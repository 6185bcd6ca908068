package repository

import (
	"context"
	"errors"
	"time"

	"codehub/internal/models"

	"gorm.io/gorm"
)

// TaskRepository defines persistence operations for tasks.
// All lookups are scoped to the owning user: a task belonging to someone else
// is indistinguishable from a missing one.
type TaskRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Task, error)
	GetByID(ctx context.Context, userID, id uint) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, userID, id uint) error
	CompletedPerDay(ctx context.Context, userID uint, since time.Time, tz string) (map[string]int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository returns a new TaskRepository implementation.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) ListByUser(ctx context.Context, userID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, userID, id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Task", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &task, nil
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	// Save with Select("*") so clearing CompletedAt back to NULL persists.
	if err := r.db.WithContext(ctx).Model(task).Select("*").Updates(task).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Task{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Task", id)
	}
	return nil
}

// dayCount is the scan target for per-day GROUP BY aggregates.
type dayCount struct {
	Day   string
	Count int64
}

// CompletedPerDay returns completion counts keyed by "YYYY-MM-DD", bucketed in
// the given timezone. Days without completions are absent from the map; the
// metrics service zero-fills against its date spine.
func (r *taskRepository) CompletedPerDay(ctx context.Context, userID uint, since time.Time, tz string) (map[string]int64, error) {
	var rows []dayCount
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("to_char(completed_at AT TIME ZONE ?, 'YYYY-MM-DD') AS day, COUNT(*) AS count", tz).
		Where("user_id = ? AND completed_at IS NOT NULL AND completed_at >= ?", userID, since).
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
