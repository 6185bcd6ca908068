package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetVelocity handles GET /api/metrics/velocity?days=n
func (s *Server) GetVelocity(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	series := s.metricsService.Velocity(c.Context(), currentUserID(c), days)
	return c.JSON(series)
}

// GetFocusMetrics handles GET /api/metrics/focus
func (s *Server) GetFocusMetrics(c *fiber.Ctx) error {
	series := s.metricsService.FocusByDay(c.Context(), currentUserID(c))
	return c.JSON(series)
}
