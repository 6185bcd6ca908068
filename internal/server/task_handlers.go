package server

import (
	"time"

	"codehub/internal/models"
	"codehub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTasks handles GET /api/tasks
func (s *Server) GetTasks(c *fiber.Ctx) error {
	tasks, err := s.taskService.ListTasks(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tasks)
}

// CreateTask handles POST /api/tasks. The response carries the achievements
// newly unlocked by this mutation so the client can toast them.
func (s *Server) CreateTask(c *fiber.Ctx) error {
	var req struct {
		Title           string     `json:"title"`
		Description     string     `json:"description"`
		Status          string     `json:"status"`
		Priority        string     `json:"priority"`
		DueDate         *time.Time `json:"due_date"`
		EstimateMinutes int        `json:"estimate_minutes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	task, err := s.taskService.CreateTask(c.Context(), service.CreateTaskInput{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
		Priority:        req.Priority,
		DueDate:         req.DueDate,
		EstimateMinutes: req.EstimateMinutes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	newAchievements := s.achievementService.CheckAfterMutation(c.Context(), userID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"task":             task,
		"new_achievements": newAchievements,
	})
}

// UpdateTask handles PUT /api/tasks/:id
func (s *Server) UpdateTask(c *fiber.Ctx) error {
	taskID, err := parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title           *string    `json:"title"`
		Description     *string    `json:"description"`
		Status          *string    `json:"status"`
		Priority        *string    `json:"priority"`
		DueDate         *time.Time `json:"due_date"`
		EstimateMinutes *int       `json:"estimate_minutes"`
		SpentMinutes    *int       `json:"spent_minutes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	task, becameDone, err := s.taskService.UpdateTask(c.Context(), service.UpdateTaskInput{
		UserID:          userID,
		TaskID:          taskID,
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
		Priority:        req.Priority,
		DueDate:         req.DueDate,
		EstimateMinutes: req.EstimateMinutes,
		SpentMinutes:    req.SpentMinutes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	// Completing a task is the only update that can move the counters.
	newAchievements := []string{}
	if becameDone {
		newAchievements = s.achievementService.CheckAfterMutation(c.Context(), userID)
	}

	return c.JSON(fiber.Map{
		"task":             task,
		"new_achievements": newAchievements,
	})
}

// DeleteTask handles DELETE /api/tasks/:id
func (s *Server) DeleteTask(c *fiber.Ctx) error {
	taskID, err := parseID(c)
	if err != nil {
		return nil
	}

	if err := s.taskService.DeleteTask(c.Context(), currentUserID(c), taskID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
