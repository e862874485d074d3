package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/nepal-data-analyzer/internal/app"
	"github.com/couchcryptid/nepal-data-analyzer/internal/config"
	"github.com/couchcryptid/nepal-data-analyzer/internal/observability"
	"github.com/fatih/color"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, logger, metrics, os.Stdout, !color.NoColor)

	if _, err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Error("analysis failed", "error", err)
		a.Close()
		os.Exit(1)
	}

	// With HTTP_ADDR set, keep serving health, metrics and the report until
	// interrupted.
	if a.Serving() {
		<-ctx.Done()
		logger.Info("shutting down")
	}
	a.Close()
}
