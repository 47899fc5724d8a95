package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"evocoffee/internal/cli"
	"evocoffee/internal/events"
	applog "evocoffee/internal/log"
	"evocoffee/internal/sheets"
	gsheet "evocoffee/internal/sheets/google"
	memsheet "evocoffee/internal/sheets/memory"
	"evocoffee/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(applog.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting evocoffee-worker")

	// Mirror target: Google Sheets when configured, otherwise an
	// in-memory sink so the queue still drains in local setups.
	var writer sheets.PurchaseWriter
	if cfg.GoogleSpreadsheetID != "" {
		client, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", applog.FieldError, err)
			os.Exit(1)
		}
		writer = client
		logger.Info("Google Sheets mirror initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		writer = memsheet.New()
		logger.Info("Google Sheets disabled, mirroring to memory sink")
	}

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}
	client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to message broker", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	mirror := worker.NewMirrorWorker(writer, logger)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.ConsumePurchaseSync(gctx, mirror.HandleSyncMessage)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Message consumption failed", applog.FieldError, err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped gracefully")
}
