package server

import (
	"codehub/internal/achievements"

	"github.com/gofiber/fiber/v2"
)

// GetAchievements handles GET /api/achievements, returning the caller's
// unlock records.
func (s *Server) GetAchievements(c *fiber.Ctx) error {
	unlocks, err := s.achievementService.ListUnlocks(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(unlocks)
}

// GetAchievementCatalog handles GET /api/achievements/catalog, returning the
// static definitions the client renders badges from.
func (s *Server) GetAchievementCatalog(c *fiber.Ctx) error {
	return c.JSON(achievements.Catalog)
}

// CheckAchievements handles POST /api/achievements/check, forcing a full
// evaluator run for the caller.
func (s *Server) CheckAchievements(c *fiber.Ctx) error {
	result, err := s.achievementService.Check(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}
