package main

// @title Travel App API
// @version 1.0.0
// @description Бэкенд приложения для планирования поездок: каталог городов, мест и событий,
// @description пользователи и планы поездок с проверкой маршрута и жизненным циклом статусов.

// @contact.name API Support
// @contact.email support@travelapp.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/erdoganeray/travelApp/docs"
	"github.com/erdoganeray/travelApp/internal/auth"
	"github.com/erdoganeray/travelApp/internal/config"
	httpDelivery "github.com/erdoganeray/travelApp/internal/delivery/http"
	"github.com/erdoganeray/travelApp/internal/delivery/http/handler"
	"github.com/erdoganeray/travelApp/internal/pkg/logger"
	"github.com/erdoganeray/travelApp/internal/repository/cache"
	"github.com/erdoganeray/travelApp/internal/repository/mongo"
	"github.com/erdoganeray/travelApp/internal/repository/postgres"
	redisRepo "github.com/erdoganeray/travelApp/internal/repository/redis"
	"github.com/erdoganeray/travelApp/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "travel-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Travel App API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to MongoDB (plans and catalog)
	mongoDB, err := mongo.NewMongo(&cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	// 4. Connect to PostgreSQL (users) and apply migrations
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create MongoDB indexes", zap.Error(err))
	}
	cancel()

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	planRepo := mongo.NewPlanRepository(mongoDB)
	cityRepo := mongo.NewCityRepository(mongoDB)
	placeRepo := mongo.NewPlaceRepository(mongoDB)
	eventRepo := mongo.NewEventRepository(mongoDB)
	userRepo := postgres.NewUserRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 7. Initialize Use Cases
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTTL)

	planUC := usecase.NewPlanUseCase(planRepo, streamRepo, nil, log)
	cityUC := usecase.NewCityUseCase(cityRepo, cacheRepo, cfg.Cache.CatalogCacheTTL, log)
	placeUC := usecase.NewPlaceUseCase(placeRepo, cacheRepo, cfg.Cache.CatalogCacheTTL, log)
	eventUC := usecase.NewEventUseCase(eventRepo, cacheRepo, cfg.Cache.CatalogCacheTTL, log)
	userUC := usecase.NewUserUseCase(userRepo, tokens, cfg.Auth.PasswordHashCost, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, tokens, httpDelivery.Handlers{
		Health: handler.NewHealthHandler(map[string]handler.HealthChecker{
			"mongo":    mongoDB,
			"postgres": db,
			"redis":    redisClient,
		}, log),
		City:  handler.NewCityHandler(cityUC, log),
		Place: handler.NewPlaceHandler(placeUC, log),
		Event: handler.NewEventHandler(eventUC, log),
		Plan:  handler.NewPlanHandler(planUC, log),
		User:  handler.NewUserHandler(userUC, log),
	})

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	if err := mongoDB.Close(ctx); err != nil {
		log.Error("Failed to close MongoDB", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
