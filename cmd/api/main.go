// cmd/api/main.go

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodtrend/internal/config"
	"foodtrend/internal/di"
	"foodtrend/internal/logger"
	"foodtrend/internal/server"
)

func main() {
	// Load .env if present, then configuration
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: %v. Using environment variables.", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Initialize dependencies
	components, err := di.NewApplicationComponents(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to initialize components", "error", err)
		os.Exit(1)
	}
	defer components.Close()

	if cfg.Suggest.APIKey == "" {
		appLogger.Warn("ANTHROPIC_API_KEY is not set; only demo runs will succeed")
	}

	// Initialize HTTP server
	httpServer := server.NewServer(
		cfg.Server,
		components.Pipeline,
		components.RunStore,
		components.Source.Locations(),
		appLogger,
	)

	// Start HTTP server
	go func() {
		appLogger.Info("starting HTTP server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	appLogger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown error", "error", err)
	}

	appLogger.Info("shutdown complete")
}
