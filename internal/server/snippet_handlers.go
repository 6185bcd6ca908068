package server

import (
	"codehub/internal/models"
	"codehub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSnippets handles GET /api/snippets?search=
func (s *Server) GetSnippets(c *fiber.Ctx) error {
	snippets, err := s.snippetService.ListSnippets(c.Context(), currentUserID(c), c.Query("search"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(snippets)
}

// CreateSnippet handles POST /api/snippets
func (s *Server) CreateSnippet(c *fiber.Ctx) error {
	var req struct {
		Title    string   `json:"title"`
		Code     string   `json:"code"`
		Language string   `json:"language"`
		Tags     []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	snippet, err := s.snippetService.CreateSnippet(c.Context(), service.CreateSnippetInput{
		UserID:   userID,
		Title:    req.Title,
		Code:     req.Code,
		Language: req.Language,
		Tags:     req.Tags,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	newAchievements := s.achievementService.CheckAfterMutation(c.Context(), userID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"snippet":          snippet,
		"new_achievements": newAchievements,
	})
}

// UpdateSnippet handles PUT /api/snippets/:id
func (s *Server) UpdateSnippet(c *fiber.Ctx) error {
	snippetID, err := parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title    *string   `json:"title"`
		Code     *string   `json:"code"`
		Language *string   `json:"language"`
		Tags     *[]string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	snippet, err := s.snippetService.UpdateSnippet(c.Context(), service.UpdateSnippetInput{
		UserID:    currentUserID(c),
		SnippetID: snippetID,
		Title:     req.Title,
		Code:      req.Code,
		Language:  req.Language,
		Tags:      req.Tags,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(snippet)
}

// DeleteSnippet handles DELETE /api/snippets/:id
func (s *Server) DeleteSnippet(c *fiber.Ctx) error {
	snippetID, err := parseID(c)
	if err != nil {
		return nil
	}

	if err := s.snippetService.DeleteSnippet(c.Context(), currentUserID(c), snippetID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
