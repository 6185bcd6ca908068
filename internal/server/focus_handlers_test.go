package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codehub/internal/achievements"
	"codehub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateFocusSession(t *testing.T) {
	app := fiber.New()
	s, m := newTestServer()
	app.Use(asUser(1))
	app.Post("/focus-sessions", s.CreateFocusSession)

	m.focus.On("Create", mock.Anything, mock.AnythingOfType("*models.FocusSession")).Return(nil)
	m.achievements.On("Stats", mock.Anything, uint(1), "UTC").
		Return(achievements.Stats{FocusSessions: 5}, nil)
	m.achievements.On("UnlockedIDs", mock.Anything, uint(1)).Return([]string{}, nil)
	m.achievements.On("Unlock", mock.Anything, uint(1), "focus_champion").Return(true, nil)

	body, _ := json.Marshal(map[string]any{"duration_minutes": 25})
	req := httptest.NewRequest(http.MethodPost, "/focus-sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload struct {
		Session         models.FocusSession `json:"session"`
		NewAchievements []string            `json:"new_achievements"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, 25, payload.Session.DurationMinutes)
	assert.Equal(t, []string{"focus_champion"}, payload.NewAchievements)
}

func TestCreateFocusSessionRejectsBadDuration(t *testing.T) {
	for _, minutes := range []int{0, -5, 600} {
		app := fiber.New()
		s, m := newTestServer()
		app.Use(asUser(1))
		app.Post("/focus-sessions", s.CreateFocusSession)

		body, _ := json.Marshal(map[string]any{"duration_minutes": minutes})
		req := httptest.NewRequest(http.MethodPost, "/focus-sessions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "duration %d", minutes)
		m.focus.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestCreateFocusSessionBackfill(t *testing.T) {
	app := fiber.New()
	s, m := newTestServer()
	app.Use(asUser(1))
	app.Post("/focus-sessions", s.CreateFocusSession)

	var created *models.FocusSession
	m.focus.On("Create", mock.Anything, mock.AnythingOfType("*models.FocusSession")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.FocusSession)
		}).
		Return(nil)
	m.achievements.On("Stats", mock.Anything, uint(1), "UTC").
		Return(achievements.Stats{FocusSessions: 1}, nil)
	m.achievements.On("UnlockedIDs", mock.Anything, uint(1)).Return([]string{}, nil)

	loggedAt := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	body, _ := json.Marshal(map[string]any{
		"duration_minutes": 50,
		"logged_at":        loggedAt.Format(time.RFC3339),
	})
	req := httptest.NewRequest(http.MethodPost, "/focus-sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	if assert.NotNil(t, created) {
		assert.True(t, created.LoggedAt.Equal(loggedAt))
	}
}

func TestGetFocusSessions(t *testing.T) {
	app := fiber.New()
	s, m := newTestServer()
	app.Use(asUser(1))
	app.Get("/focus-sessions", s.GetFocusSessions)

	m.focus.On("ListByUser", mock.Anything, uint(1)).Return([]models.FocusSession{
		{ID: 1, UserID: 1, DurationMinutes: 25},
		{ID: 2, UserID: 1, DurationMinutes: 50},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/focus-sessions", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sessions []models.FocusSession
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&sessions))
	assert.Len(t, sessions, 2)
}
