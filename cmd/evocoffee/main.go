package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"evocoffee/internal/cli"
	"evocoffee/internal/events"
	apphttp "evocoffee/internal/http"
	applog "evocoffee/internal/log"
	"evocoffee/internal/render"
	"evocoffee/internal/store"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(applog.ComponentApp)
	cfg := cli.LoadAndValidateConfig(logger)

	backend := cli.OpenStateStore(logger, cfg)
	defer backend.Close()

	// Hydrate the in-memory store from whatever the backend holds. A
	// fresh backend yields the empty default state.
	records := store.New()
	doc, err := backend.Read(context.Background())
	if err != nil {
		logger.Error("Failed to read persisted state", applog.FieldError, err)
		os.Exit(1)
	}
	records.Hydrate(doc)

	// Purchase mirroring is optional; without a broker URL purchases
	// stay local.
	var notifier render.PurchaseNotifier
	if cfg.AMQPURL != "" {
		client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to connect to message broker", applog.FieldError, err)
			os.Exit(1)
		}
		defer client.Close()
		notifier = client
		logger.Info("Purchase sync publishing enabled", "exchange", cfg.AMQPExchange)
	} else {
		logger.Info("Purchase sync publishing disabled, no AMQP_URL provided")
	}

	orch := render.NewOrchestrator(records, backend, notifier, logger)

	srv := apphttp.NewServer(":"+cfg.Port, orch, logger)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
	})

	logger.Info("Starting evocoffee server",
		applog.FieldPort, cfg.Port,
		applog.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", applog.FieldError, err, applog.FieldPort, cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
