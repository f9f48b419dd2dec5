// Package httpapi exposes the engine over HTTP. Routes and wire shapes
// stay compatible with the original /api surface.
package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"tutorhub/internal/service"
)

type Server struct {
	app      *fiber.App
	services *service.Services
	validate *validator.Validate
	logger   *zap.Logger
}

func NewServer(services *service.Services, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	s := &Server{
		app:      app,
		services: services,
		validate: validator.New(),
		logger:   logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")

	api.Post("/auth/register", s.handleRegister)
	api.Post("/auth/login", s.handleLogin)

	api.Get("/users", s.handleListUsers)

	api.Get("/tutors", s.handleListTutors)
	api.Get("/tutors/search", s.handleSearchTutors)
	api.Get("/tutors/:id", s.handleGetTutor)
	api.Patch("/tutors/:id", s.handleUpdateTutor)
	api.Get("/tutors/:id/availability.png", s.handleTutorAvailabilityImage)

	api.Get("/sessions", s.handleListSessions)
	api.Post("/sessions", s.handleCreateSession)
	api.Patch("/sessions/:id/status", s.handleSessionStatus)
	api.Delete("/sessions/:id", s.handleDeleteSession)

	api.Get("/bookings", s.handleListBookings)
	api.Post("/bookings", s.handleCreateBooking)
	api.Delete("/bookings/:id", s.handleCancelBooking)

	api.Post("/feedback", s.handleSubmitFeedback)
	api.Get("/feedback/aggregate", s.handleFeedbackAggregate)

	api.Get("/resources", s.handleListResources)
	api.Post("/resources", s.handleAddResource)
	api.Get("/resources/:id/stream", s.handleStreamResource)

	api.Get("/logs", s.handleListLogs)
	api.Post("/logs", s.handleAddLog)

	api.Get("/notifications", s.handleListNotifications)
	api.Post("/notifications/clear", s.handleClearNotifications)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}

func (s *Server) Listen(addr string) error {
	s.logger.Info("HTTP server listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
