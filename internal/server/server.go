// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"time"

	"codehub/internal/cache"
	"codehub/internal/config"
	"codehub/internal/database"
	"codehub/internal/middleware"
	"codehub/internal/repository"
	"codehub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	db     *gorm.DB
	redis  *redis.Client

	userRepo        repository.UserRepository
	taskRepo        repository.TaskRepository
	snippetRepo     repository.SnippetRepository
	focusRepo       repository.FocusSessionRepository
	achievementRepo repository.AchievementRepository

	userService        *service.UserService
	taskService        *service.TaskService
	snippetService     *service.SnippetService
	focusService       *service.FocusService
	achievementService *service.AchievementService
	metricsService     *service.MetricsService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	server := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		userRepo:        repository.NewUserRepository(db),
		taskRepo:        repository.NewTaskRepository(db),
		snippetRepo:     repository.NewSnippetRepository(db),
		focusRepo:       repository.NewFocusSessionRepository(db),
		achievementRepo: repository.NewAchievementRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo)
	server.taskService = service.NewTaskService(server.taskRepo)
	server.snippetService = service.NewSnippetService(server.snippetRepo)
	server.focusService = service.NewFocusService(server.focusRepo)
	server.achievementService = service.NewAchievementService(server.achievementRepo, cfg.MetricsTimezone)
	server.metricsService = service.NewMetricsService(server.taskRepo, server.focusRepo, cfg.MetricsLocation())

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID into slog
	app.Use(middleware.ContextMiddleware())

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	// Legacy route used by existing scripts
	app.Get("/health", s.ReadinessCheck)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired(s.config.JWTSecret))

	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)

	tasks := protected.Group("/tasks")
	tasks.Get("/", s.GetTasks)
	tasks.Post("/", s.CreateTask)
	tasks.Put("/:id", s.UpdateTask)
	tasks.Delete("/:id", s.DeleteTask)

	snippets := protected.Group("/snippets")
	snippets.Get("/", s.GetSnippets)
	snippets.Post("/", s.CreateSnippet)
	snippets.Put("/:id", s.UpdateSnippet)
	snippets.Delete("/:id", s.DeleteSnippet)

	focus := protected.Group("/focus-sessions")
	focus.Get("/", s.GetFocusSessions)
	focus.Post("/", s.CreateFocusSession)

	metrics := protected.Group("/metrics")
	metrics.Get("/velocity", s.GetVelocity)
	metrics.Get("/focus", s.GetFocusMetrics)

	achievementRoutes := protected.Group("/achievements")
	achievementRoutes.Get("/", s.GetAchievements)
	achievementRoutes.Get("/catalog", s.GetAchievementCatalog)
	achievementRoutes.Post("/check", s.CheckAchievements)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().UTC()})
}

// ReadinessCheck reports whether the server can reach its database.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  "database unreachable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().UTC()})
}
