// Package cli provides common initialization for the evocoffee binaries.
// It consolidates the startup sequence shared by cmd/evocoffee and
// cmd/evocoffee-worker.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"evocoffee/internal/config"
	applog "evocoffee/internal/log"
	"evocoffee/internal/persist"
)

// SetupLogger initializes structured logging and installs it as the
// process default.
func SetupLogger() *applog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := applog.New(level)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. A missing file
// is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting
// the process on failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStateStore opens the configured persistence backend, exiting the
// process on failure.
func OpenStateStore(logger *applog.Logger, cfg *config.Config) persist.Store {
	backend, err := persist.Open(cfg)
	if err != nil {
		logger.Error("Failed to open state backend",
			applog.FieldError, err,
			applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return backend
}

// GracefulShutdown installs SIGINT/SIGTERM handling. The returned
// context is cancelled on the first signal; cleanup runs before
// cancellation and done closes when shutdown has finished.
func GracefulShutdown(logger *applog.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}

		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(2 * time.Second):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled and shutdown
// has completed.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
