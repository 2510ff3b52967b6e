package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alanjohnck/porter-proxy/internal/config"
	"github.com/alanjohnck/porter-proxy/internal/handler"
	"github.com/alanjohnck/porter-proxy/internal/service"
	"github.com/alanjohnck/porter-proxy/pkg/logger"
)

func main() {
	// Create .env from .env.example if not exists
	if err := ensureEnvFile(); err != nil {
		log.Printf("Warning: Failed to create .env file: %v", err)
	}

	// Load configuration; a missing credential stops the process here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.New(cfg.Log.Level)
	appLogger.Info("Starting Porter proxy", "porter_base_url", cfg.Porter.BaseURL)

	// Initialize services
	porterService := service.NewPorterService(&cfg.Porter, appLogger)
	ipService := service.NewIPService(&cfg.IPLookup, appLogger)

	// Initialize handlers and routes
	router := handler.NewRouter(handler.Handlers{
		Porter: handler.NewPorterHandler(porterService, appLogger),
		Health: handler.NewHealthHandler(porterService, appLogger),
		IP:     handler.NewIPHandler(ipService, appLogger),
	}, cfg.CORS.AllowedOrigins, appLogger)

	// Create HTTP server
	addr := cfg.Address()
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Porter.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server error", "error", err)
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server stopped gracefully")
}

// ensureEnvFile creates .env from .env.example if .env doesn't exist
func ensureEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return nil
	}

	if _, err := os.Stat(".env.example"); os.IsNotExist(err) {
		return fmt.Errorf(".env.example not found")
	}

	source, err := os.Open(".env.example")
	if err != nil {
		return fmt.Errorf("failed to open .env.example: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(".env")
	if err != nil {
		return fmt.Errorf("failed to create .env: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return fmt.Errorf("failed to copy .env.example to .env: %w", err)
	}

	log.Println("Created .env file from .env.example")
	return nil
}
