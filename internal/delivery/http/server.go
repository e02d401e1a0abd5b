package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/config"
	"github.com/erdoganeray/travelApp/internal/delivery/http/handler"
	"github.com/erdoganeray/travelApp/internal/delivery/http/middleware"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/utils"
)

// Handlers - все HTTP обработчики сервера
type Handlers struct {
	Health *handler.HealthHandler
	City   *handler.CityHandler
	Place  *handler.PlaceHandler
	Event  *handler.EventHandler
	Plan   *handler.PlanHandler
	User   *handler.UserHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
	tokens   middleware.TokenValidator
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokens middleware.TokenValidator,
	handlers Handlers,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Travel App API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		tokens:   tokens,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/", s.handlers.Health.Welcome)
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")
	api.Get("/health", s.handlers.Health.Health)

	cities := api.Group("/cities")
	cities.Get("/", s.handlers.City.List)
	cities.Get("/:id", s.handlers.City.Get)
	cities.Post("/", s.handlers.City.Create)
	cities.Put("/:id", s.handlers.City.Update)
	cities.Delete("/:id", s.handlers.City.Delete)

	api.Get("/places", s.handlers.Place.List)
	api.Get("/places/:id", s.handlers.Place.Get)

	api.Get("/events", s.handlers.Event.List)
	api.Get("/events/:id", s.handlers.Event.Get)

	requireAuth := middleware.Auth(s.tokens, s.logger)

	plans := api.Group("/plans", requireAuth)
	plans.Get("/", s.handlers.Plan.List)
	plans.Post("/", s.handlers.Plan.Create)
	plans.Get("/:id", s.handlers.Plan.Get)
	plans.Put("/:id", s.handlers.Plan.Update)
	plans.Patch("/:id/status", s.handlers.Plan.ChangeStatus)
	plans.Get("/:id/transitions", s.handlers.Plan.Transitions)
	plans.Delete("/:id", s.handlers.Plan.Delete)

	users := api.Group("/users")
	users.Post("/register", s.handlers.User.Register)
	users.Post("/login", s.handlers.User.Login)
	users.Get("/profile", requireAuth, s.handlers.User.Profile)
	users.Put("/profile", requireAuth, s.handlers.User.UpdateProfile)
	users.Put("/preferences", requireAuth, s.handlers.User.UpdatePreferences)
}

// App - fiber приложение, используется в тестах
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

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			if fe.Code == fiber.StatusNotFound {
				code = "ROUTE_NOT_FOUND"
			}
			return utils.SendError(c, apperrors.New(code, fe.Message, fe.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
