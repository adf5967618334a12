package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/config"
	"github.com/ecotravel-admin/internal/delivery/http/handler"
	"github.com/ecotravel-admin/internal/delivery/http/middleware"
	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/utils"
)

// Handlers - обработчики страниц админки
type Handlers struct {
	Booking   *handler.BookingHandler
	Location  *handler.LocationHandler
	Transport *handler.TransportHandler
	Planner   *handler.PlannerHandler
	Admin     *handler.AdminHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "EcoTravel Admin",
		ReadTimeout:  10 * time.Second,
		// планировщик может отвечать до BACKEND_LONG_TIMEOUT
		WriteTimeout: cfg.Backend.LongRequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(requestid.New())
	s.app.Use(middleware.Session())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")
	h := s.handlers

	api.Get("/health", h.Admin.Health)
	api.Get("/pages", h.Admin.Pages)
	api.Get("/audit", h.Admin.Audit)

	// Bookings
	bookings := api.Group("/bookings")
	bookings.Get("/", h.Booking.List)
	bookings.Post("/", h.Booking.Create)
	bookings.Get("/:id", h.Booking.Get)
	bookings.Put("/:id", h.Booking.Update)
	bookings.Delete("/:id", h.Booking.Delete)

	// Locations; статические пути до /:id
	locations := api.Group("/locations")
	locations.Get("/", h.Location.List)
	locations.Post("/", h.Location.Create)
	locations.Get("/nearby", h.Location.Nearby)
	locations.Get("/variants/:type", h.Location.ListByVariant)
	locations.Get("/:id", h.Location.Get)
	locations.Put("/:id", h.Location.Update)
	locations.Delete("/:id", h.Location.Delete)

	// Transports
	transports := api.Group("/transports")
	transports.Get("/", h.Transport.List)
	transports.Get("/search", h.Transport.Search)
	transports.Get("/rankings/:ranking", h.Transport.Ranking)
	transports.Post("/:kind", h.Transport.Create)
	transports.Get("/:id", h.Transport.Get)
	transports.Put("/:id", h.Transport.Update)
	transports.Delete("/:id", h.Transport.Delete)

	// Planner
	api.Get("/activities", h.Planner.ListActivities)
	api.Post("/activities/compare", h.Planner.Compare)
	api.Post("/trips/optimize", h.Planner.OptimizeTrip)
	api.Post("/itineraries/three-day", h.Planner.GenerateItinerary)
}

// App возвращает fiber приложение, используется в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные в хендлерах (404 маршрута, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		} else if appErr, ok := apperrors.As(err); ok {
			code = appErr.StatusCode
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return utils.SendError(c, err)
	}
}
