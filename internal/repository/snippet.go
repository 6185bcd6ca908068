package repository

import (
	"context"
	"errors"
	"strings"

	"codehub/internal/cache"
	"codehub/internal/models"

	"gorm.io/gorm"
)

// SnippetRepository defines persistence operations for code snippets.
type SnippetRepository interface {
	ListByUser(ctx context.Context, userID uint, search string) ([]models.Snippet, error)
	GetByID(ctx context.Context, userID, id uint) (*models.Snippet, error)
	Create(ctx context.Context, snippet *models.Snippet) error
	Update(ctx context.Context, snippet *models.Snippet) error
	Delete(ctx context.Context, userID, id uint) error
}

type snippetRepository struct {
	db *gorm.DB
}

// NewSnippetRepository returns a new SnippetRepository implementation.
func NewSnippetRepository(db *gorm.DB) SnippetRepository {
	return &snippetRepository{db: db}
}

func (r *snippetRepository) ListByUser(ctx context.Context, userID uint, search string) ([]models.Snippet, error) {
	var snippets []models.Snippet

	if search == "" {
		// Only the unfiltered library view is cached; every mutation path
		// invalidates the key.
		err := cache.Aside(ctx, cache.SnippetListKey(userID), &snippets, cache.SnippetListTTL, func() error {
			return r.db.WithContext(ctx).
				Where("user_id = ?", userID).
				Order("created_at DESC").
				Find(&snippets).Error
		})
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		return snippets, nil
	}

	// Case-insensitive match on title or code body, same as the SPA's
	// search box expects.
	pattern := "%" + strings.ToLower(search) + "%"
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("LOWER(title) LIKE ? OR LOWER(code) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&snippets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return snippets, nil
}

func (r *snippetRepository) GetByID(ctx context.Context, userID, id uint) (*models.Snippet, error) {
	var snippet models.Snippet
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&snippet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Snippet", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &snippet, nil
}

func (r *snippetRepository) Create(ctx context.Context, snippet *models.Snippet) error {
	if err := r.db.WithContext(ctx).Create(snippet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *snippetRepository) Update(ctx context.Context, snippet *models.Snippet) error {
	if err := r.db.WithContext(ctx).Model(snippet).Select("*").Updates(snippet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *snippetRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Snippet{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Snippet", id)
	}
	return nil
}
