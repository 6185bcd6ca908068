package server

import (
	"time"

	"codehub/internal/models"
	"codehub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateFocusSession handles POST /api/focus-sessions
func (s *Server) CreateFocusSession(c *fiber.Ctx) error {
	var req struct {
		DurationMinutes int        `json:"duration_minutes"`
		LoggedAt        *time.Time `json:"logged_at"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.CreateFocusSessionInput{
		UserID:          currentUserID(c),
		DurationMinutes: req.DurationMinutes,
	}
	if req.LoggedAt != nil {
		in.LoggedAt = *req.LoggedAt
	}

	session, err := s.focusService.CreateSession(c.Context(), in)
	if err != nil {
		return respondServiceError(c, err)
	}

	newAchievements := s.achievementService.CheckAfterMutation(c.Context(), in.UserID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session":          session,
		"new_achievements": newAchievements,
	})
}

// GetFocusSessions handles GET /api/focus-sessions
func (s *Server) GetFocusSessions(c *fiber.Ctx) error {
	sessions, err := s.focusService.ListSessions(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(sessions)
}
