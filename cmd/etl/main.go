package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	adiosadapter "github.com/couchcryptid/adios-oil-etl/internal/adapter/adios"
	httpadapter "github.com/couchcryptid/adios-oil-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/adios-oil-etl/internal/adapter/kafka"
	"github.com/couchcryptid/adios-oil-etl/internal/config"
	"github.com/couchcryptid/adios-oil-etl/internal/observability"
	"github.com/couchcryptid/adios-oil-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := adiosadapter.NewClient(cfg.ADIOSBaseURL, cfg.ADIOSTimeout, metrics, logger)
	pager := adiosadapter.NewPager(client, cfg.ADIOSQuery, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(client, cfg.IncludeGeneric, logger)

	p := pipeline.New(pager, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, client, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Run the export; the pipeline ends on its own once the listing is
	// exhausted, so a completed run also triggers shutdown.
	runCtx, done := context.WithCancel(ctx)
	go func() {
		defer done()
		if err := p.Run(runCtx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-runCtx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
