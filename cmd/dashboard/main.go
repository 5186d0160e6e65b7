// Command dashboard is the football analytics API server. It serves the
// dashboard pages, chart descriptors and CSV exports over a read-only store.
//
// Usage:
//
//	dashboard
//	API_PORT=8080 QUERY_TIMEOUT=3s dashboard

// @title Football Analytics API
// @version 1.0.0
// @description Read-only analytics over a football league database: pages, charts and CSV exports.
// @host localhost:8000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/analytics"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/api"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/config"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/db"

	_ "github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Connect to database. Nothing is served without a store.
	logger.Info("Connecting to database...", "database", cfg.Redacted())
	pool, err := db.New(ctx, cfg, db.ReadOnly)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns,
		"query_timeout", cfg.QueryTimeout)

	svc := analytics.New(pool, analytics.OptionsFromConfig(cfg), logger)

	// Create router
	router := api.NewRouter(svc, pool, cfg, logger)

	// Create HTTP server
	addr := cfg.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting football analytics API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
