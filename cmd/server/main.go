package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/api"
	"github.com/news-api/internal/config"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/metrics"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/service"
	"github.com/news-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		// The configured logger may not exist yet
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("Server failed")
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info().Msg("Starting News API server...")

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Run migrations
	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	// Metrics
	m := metrics.NewDefault()
	if err := m.RegisterDBStats(db.DB, cfg.Database.Name); err != nil {
		log.Warn().Err(err).Msg("Failed to register database pool metrics")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize services
	services := service.NewServices(repos, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log,
		api.WithHealthChecker(db),
		api.WithMetrics(m),
	)

	srv := newServer(cfg.Server, api.StripTrailingSlash(router))

	// Start server in goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}

// newServer creates the HTTP server
func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.ReadTimeout,
	}
}
