package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/config"
	"github.com/venue-booking-portal/internal/delivery/http/handler"
	"github.com/venue-booking-portal/internal/delivery/http/middleware"
	"github.com/venue-booking-portal/internal/delivery/http/view"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/pkg/session"
	"github.com/venue-booking-portal/internal/pkg/utils"
)

// apiPrefix - JSON API отвечает ошибками в конверте, остальные маршруты HTML
const apiPrefix = "/api/"

// Handlers - все обработчики портала
type Handlers struct {
	Page     *handler.PageHandler
	Venue    *handler.VenueHandler
	Auth     *handler.AuthHandler
	Booking  *handler.BookingHandler
	Wizard   *handler.WizardHandler
	Language *handler.LanguageHandler
	API      *handler.APIHandler
	Stats    *handler.StatsHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	sessions *session.Manager
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	sessions *session.Manager,
	handlers Handlers,
) *Server {
	s := &Server{
		config:   cfg,
		logger:   logger,
		sessions: sessions,
		handlers: handlers,
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "Venue Booking Portal",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    25 * 1024 * 1024,
		ErrorHandler: s.errorHandler,
	})

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App returns the underlying fiber application
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Tracing())
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.Session(s.sessions, s.logger))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	h := s.handlers

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(view.Static()),
		MaxAge: 3600,
	}))

	if s.config.Metrics.Enabled {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := s.app.Group("/api/v1")
	api.Get("/health", h.API.Health)

	// Venues
	api.Get("/venues", h.API.ListVenues)
	api.Get("/venues/:id", h.API.GetVenue)
	api.Get("/venues/:id/facilities/:facilityId", h.API.GetVenueFacility)
	api.Get("/facilities", h.API.ListFacilities)
	api.Get("/facilities/:id", h.API.GetFacility)

	// Bookings
	api.Get("/bookings", h.API.ListBookings)
	api.Get("/bookings/:id", h.API.GetBooking)
	api.Get("/availability", h.API.CheckAvailability)

	// Stats
	api.Get("/stats", h.Stats.GetStatistics)

	api.Use(func(c *fiber.Ctx) error {
		return utils.SendError(c, errors.ErrPageNotFound.WithDetails(map[string]interface{}{
			"path": c.Path(),
		}))
	})

	// Pages
	s.app.Get("/", h.Page.Home)
	s.app.Get("/guidelines", h.Page.Guidelines)
	s.app.Get("/venues", h.Venue.List)
	s.app.Get("/venues/:id", h.Venue.Detail)
	s.app.Get("/login", h.Auth.LoginPage)
	s.app.Post("/login", h.Auth.Login)
	s.app.Get("/my-bookings", h.Booking.MyBookings)
	s.app.Get("/my-bookings/:id", h.Booking.Detail)
	s.app.Post("/language", h.Language.Switch)

	// Booking wizard
	booking := s.app.Group("/booking")
	booking.Get("/step1", h.Wizard.Step1)
	booking.Post("/step1", h.Wizard.SubmitStep1)
	booking.Get("/step2", h.Wizard.Step2)
	booking.Post("/step2", h.Wizard.SubmitStep2)
	booking.Get("/step3", h.Wizard.Step3)
	booking.Post("/step3", h.Wizard.SubmitStep3)
	booking.Get("/step4", h.Wizard.Step4)
	booking.Post("/step4", h.Wizard.SubmitStep4)
	booking.Get("/confirmation", h.Wizard.Confirmation)
	booking.Get("/confirmation/pdf", h.Wizard.ConfirmationPDF)

	// Catch-all
	s.app.Use(h.Page.NotFound)
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

// errorHandler - JSON конверт для /api, страница 404 или текст ошибки для HTML
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	appErr, isAppErr := errors.As(err)
	if isAppErr {
		code = appErr.StatusCode
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		s.logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
	} else {
		s.logger.Debug("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)
	}

	if strings.HasPrefix(c.Path(), apiPrefix) {
		if !isAppErr && code < fiber.StatusInternalServerError {
			err = errors.New("HTTP_ERROR", http.StatusText(code), code)
		}
		return utils.SendError(c, err)
	}

	if code == fiber.StatusNotFound {
		return s.handlers.Page.NotFound(c)
	}

	msg := errors.ErrInternalServer.Message
	if isAppErr && code < fiber.StatusInternalServerError {
		msg = appErr.Message
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}
