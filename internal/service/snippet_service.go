package service

import (
	"context"

	"codehub/internal/cache"
	"codehub/internal/models"
	"codehub/internal/repository"
)

// SnippetService implements snippet library logic.
type SnippetService struct {
	snippetRepo repository.SnippetRepository
}

// CreateSnippetInput carries the fields accepted when creating a snippet.
// Title and Language fall back to the library defaults when empty.
type CreateSnippetInput struct {
	UserID   uint
	Title    string
	Code     string
	Language string
	Tags     []string
}

// UpdateSnippetInput carries a partial update; nil pointers leave fields unchanged.
type UpdateSnippetInput struct {
	UserID    uint
	SnippetID uint
	Title     *string
	Code      *string
	Language  *string
	Tags      *[]string
}

// NewSnippetService returns a SnippetService backed by the given repository.
func NewSnippetService(snippetRepo repository.SnippetRepository) *SnippetService {
	return &SnippetService{snippetRepo: snippetRepo}
}

func (s *SnippetService) ListSnippets(ctx context.Context, userID uint, search string) ([]models.Snippet, error) {
	return s.snippetRepo.ListByUser(ctx, userID, search)
}

func (s *SnippetService) CreateSnippet(ctx context.Context, in CreateSnippetInput) (*models.Snippet, error) {
	title := in.Title
	if title == "" {
		title = "Snippet"
	}
	language := in.Language
	if language == "" {
		language = "javascript"
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	snippet := &models.Snippet{
		UserID:   in.UserID,
		Title:    title,
		Code:     in.Code,
		Language: language,
		Tags:     tags,
	}
	if err := s.snippetRepo.Create(ctx, snippet); err != nil {
		return nil, err
	}
	cache.InvalidateUserActivity(ctx, in.UserID)
	return snippet, nil
}

func (s *SnippetService) UpdateSnippet(ctx context.Context, in UpdateSnippetInput) (*models.Snippet, error) {
	snippet, err := s.snippetRepo.GetByID(ctx, in.UserID, in.SnippetID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title must not be empty")
		}
		snippet.Title = *in.Title
	}
	if in.Code != nil {
		snippet.Code = *in.Code
	}
	if in.Language != nil {
		if *in.Language == "" {
			return nil, models.NewValidationError("Language must not be empty")
		}
		snippet.Language = *in.Language
	}
	if in.Tags != nil {
		snippet.Tags = *in.Tags
	}

	if err := s.snippetRepo.Update(ctx, snippet); err != nil {
		return nil, err
	}
	cache.InvalidateUserActivity(ctx, in.UserID)
	return snippet, nil
}

func (s *SnippetService) DeleteSnippet(ctx context.Context, userID, snippetID uint) error {
	if err := s.snippetRepo.Delete(ctx, userID, snippetID); err != nil {
		return err
	}
	cache.InvalidateUserActivity(ctx, userID)
	return nil
}
