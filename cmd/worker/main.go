package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asgard/internal/app"
	"github.com/asgard/internal/config"
	"github.com/asgard/internal/pkg/logger"
	redisRepo "github.com/asgard/internal/repository/redis"
	"github.com/asgard/internal/worker"
	"github.com/asgard/internal/worker/matrix"
	"go.uber.org/zap"
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

	// 2. Initialize logger
	log, err := logger.NewService(cfg.Log.Level, "asgard-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting asgard matrix worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Duration("read_timeout", cfg.Worker.StreamReadTimeout),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("graph_source", cfg.Graph.Source))

	// 3. Load graph and build the matrix pipeline
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 5*time.Minute)
	eng, err := app.NewEngine(loadCtx, cfg, log)
	cancelLoad()
	if err != nil {
		log.Fatal("Failed to initialize engine", zap.Error(err))
	}
	defer func() {
		if err := eng.Close(); err != nil {
			log.Error("Failed to close graph store", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := redisRepo.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize workers
	manager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	manager.Register(matrix.NewMatrixWorker(
		redisClient.Streams().WithReadTimeout(cfg.Worker.StreamReadTimeout),
		eng.Matrix,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxRetries,
		log,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	log.Info("Worker started successfully")

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down worker gracefully...")

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}
	cancel()

	log.Info("Worker stopped successfully")
}
