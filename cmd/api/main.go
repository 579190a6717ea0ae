package main

// @title Asgard Matrix API
// @version 1.0.0
// @description Матрицы времени в пути по уличному графу для jormun.
// @description Запросы street_network_routing_matrix и direct_path, режимы walking, bike, car.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/asgard/docs"
	"github.com/asgard/internal/app"
	"github.com/asgard/internal/config"
	httpDelivery "github.com/asgard/internal/delivery/http"
	"github.com/asgard/internal/delivery/http/handler"
	"github.com/asgard/internal/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.NewService(cfg.Log.Level, "asgard-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting asgard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("graph_source", cfg.Graph.Source),
	)

	// 3. Load graph and build the matrix pipeline
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	eng, err := app.NewEngine(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to initialize engine", zap.Error(err))
	}
	defer func() {
		if err := eng.Close(); err != nil {
			log.Error("Failed to close graph store", zap.Error(err))
		}
	}()

	// 4. Initialize HTTP Handlers
	checks := map[string]handler.HealthChecker{}
	if eng.DB != nil {
		checks["postgres"] = eng.DB
	}

	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewMatrixHandler(eng.Matrix, log),
		handler.NewGraphHandler(eng.Graph, eng.Projector),
		handler.NewHealthHandler(checks, log),
	)

	// 5. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
