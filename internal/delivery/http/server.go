package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/config"
	"github.com/garden-planner/internal/delivery/http/handler"
	"github.com/garden-planner/internal/delivery/http/middleware"
)

// Server - Fiber based HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	bedHandler       *handler.BedHandler
	plantHandler     *handler.PlantHandler
	cultureHandler   *handler.CultureHandler
	pestHandler      *handler.PestHandler
	treatmentHandler *handler.TreatmentHandler
	careHandler      *handler.CareHandler
	calendarHandler  *handler.CalendarHandler
	summaryHandler   *handler.SummaryHandler
}

// NewServer creates the HTTP server with all routes wired
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	bedHandler *handler.BedHandler,
	plantHandler *handler.PlantHandler,
	cultureHandler *handler.CultureHandler,
	pestHandler *handler.PestHandler,
	treatmentHandler *handler.TreatmentHandler,
	careHandler *handler.CareHandler,
	calendarHandler *handler.CalendarHandler,
	summaryHandler *handler.SummaryHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Garden Planner",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		bedHandler:       bedHandler,
		plantHandler:     plantHandler,
		cultureHandler:   cultureHandler,
		pestHandler:      pestHandler,
		treatmentHandler: treatmentHandler,
		careHandler:      careHandler,
		calendarHandler:  calendarHandler,
		summaryHandler:   summaryHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Bed routes
	api.Get("/beds", s.bedHandler.List)
	api.Post("/beds", s.bedHandler.Create)
	api.Get("/beds/:id", s.bedHandler.Get)
	api.Put("/beds/:id", s.bedHandler.Update)
	api.Delete("/beds/:id", s.bedHandler.Deactivate)
	api.Get("/beds/:id/history", s.bedHandler.History)
	api.Get("/beds/:id/diagram", s.bedHandler.Diagram)

	// Plant catalog routes
	api.Get("/plants", s.plantHandler.List)
	api.Post("/plants", s.plantHandler.Create)
	api.Get("/plants/:id", s.plantHandler.Get)
	api.Put("/plants/:id", s.plantHandler.Update)
	api.Post("/plants/:id/pests", s.plantHandler.LinkPest)
	api.Delete("/plants/:id/pests/:pest_id", s.plantHandler.UnlinkPest)
	api.Post("/plants/:id/cares", s.plantHandler.LinkCare)
	api.Delete("/plants/:id/cares/:care_id", s.plantHandler.UnlinkCare)

	// Culture (planting) routes
	api.Get("/cultures", s.cultureHandler.ListActive)
	api.Post("/cultures", s.cultureHandler.Create)
	api.Get("/cultures/:id", s.cultureHandler.Get)
	api.Delete("/cultures/:id", s.cultureHandler.Delete)
	api.Post("/cultures/:id/close", s.cultureHandler.Close)
	api.Put("/cultures/:id/plants/:plant_id", s.cultureHandler.UpdatePlantLayout)
	api.Post("/cultures/:id/treatments", s.cultureHandler.ScheduleTreatment)
	api.Post("/cultures/:id/cares", s.cultureHandler.ScheduleCare)
	api.Get("/cultures/:id/calendar", s.cultureHandler.Calendar)
	api.Post("/cultures/:id/calendar/generate", s.cultureHandler.GenerateCalendar)

	// Pest catalog routes
	api.Get("/pests", s.pestHandler.List)
	api.Post("/pests", s.pestHandler.Create)
	api.Get("/pests/:id", s.pestHandler.Get)
	api.Put("/pests/:id", s.pestHandler.Update)
	api.Post("/pests/:id/treatments", s.pestHandler.LinkTreatment)
	api.Delete("/pests/:id/treatments/:treatment_id", s.pestHandler.UnlinkTreatment)

	// Treatment catalog routes
	api.Get("/treatments", s.treatmentHandler.List)
	api.Post("/treatments", s.treatmentHandler.Create)
	api.Get("/treatments/:id", s.treatmentHandler.Get)
	api.Put("/treatments/:id", s.treatmentHandler.Update)

	// Care action catalog routes
	api.Get("/care-actions", s.careHandler.List)
	api.Post("/care-actions", s.careHandler.Create)
	api.Get("/care-actions/:id", s.careHandler.Get)
	api.Put("/care-actions/:id", s.careHandler.Update)

	// Calendar routes
	api.Get("/calendar", s.calendarHandler.List)
	api.Post("/calendar/:id/complete", s.calendarHandler.Complete)

	// Summary
	api.Get("/summary", s.summaryHandler.GetSummary)
}

// Start runs the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the HTTP server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler turns errors that escape the handlers into the
// standard error envelope
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
