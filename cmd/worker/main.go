package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/config"
	"github.com/erdoganeray/travelApp/internal/pkg/logger"
	"github.com/erdoganeray/travelApp/internal/repository/cache"
	"github.com/erdoganeray/travelApp/internal/repository/mongo"
	redisRepo "github.com/erdoganeray/travelApp/internal/repository/redis"
	"github.com/erdoganeray/travelApp/internal/usecase"
	"github.com/erdoganeray/travelApp/internal/worker"
	"github.com/erdoganeray/travelApp/internal/worker/scheduler"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "travel-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting plan status worker",
		zap.Duration("interval", cfg.Worker.Interval),
		zap.Int("batch_size", cfg.Worker.BatchSize))

	// 3. Connect to MongoDB
	mongoDB, err := mongo.NewMongo(&cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoDB.Close(ctx); err != nil {
			log.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories and use case
	planRepo := mongo.NewPlanRepository(mongoDB)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	schedulerUC := usecase.NewStatusSchedulerUseCase(planRepo, streamRepo, cfg.Worker.BatchSize, log)

	// 6. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(scheduler.NewStatusWorker(schedulerUC, cfg.Worker.Interval, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
