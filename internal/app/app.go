// Package app wires configuration, adapters and the analysis pipeline into a
// runnable unit shared by the command entry points.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/couchcryptid/nepal-data-analyzer/internal/adapter/chart"
	"github.com/couchcryptid/nepal-data-analyzer/internal/adapter/filestore"
	httpadapter "github.com/couchcryptid/nepal-data-analyzer/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/nepal-data-analyzer/internal/adapter/kafka"
	"github.com/couchcryptid/nepal-data-analyzer/internal/config"
	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"github.com/couchcryptid/nepal-data-analyzer/internal/observability"
	"github.com/couchcryptid/nepal-data-analyzer/internal/pipeline"
)

// App owns one analyzer pipeline and its optional side channels: the Kafka
// summary publisher and the health/metrics HTTP server.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	writer   *kafkaadapter.Writer
	server   *httpadapter.Server
}

// New builds the pipeline from cfg. Console output goes to stdout; colored
// headings are used when colored is true.
func New(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, stdout io.Writer, colored bool) *App {
	p := pipeline.New(
		filestore.NewLoader(cfg.DataDir),
		chart.NewRenderer(cfg.ChartWidthIn, cfg.ChartHeightIn),
		filestore.NewWriter(cfg.OutputDir),
		pipeline.NewConsole(stdout, colored),
		logger,
		metrics,
	)

	a := &App{cfg: cfg, logger: logger, pipeline: p}

	if cfg.PublishEnabled {
		a.writer = kafkaadapter.NewWriter(cfg, logger)
		p.WithPublisher(a.writer)
		logger.Info("summary publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSummaryTopic)
	}
	if cfg.HTTPAddr != "" {
		a.server = httpadapter.NewServer(cfg.HTTPAddr, p, p, logger)
	}
	return a
}

// Pipeline returns the underlying pipeline.
func (a *App) Pipeline() *pipeline.Pipeline {
	return a.pipeline
}

// Run starts the HTTP server if configured, then performs one analysis run
// and exports the metrics textfile if configured.
func (a *App) Run(ctx context.Context) (domain.Results, error) {
	if a.server != nil {
		go func() {
			if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("http server error", "error", err)
			}
		}()
	}

	results, err := a.pipeline.Run(ctx)

	if a.cfg.MetricsTextfile != "" {
		if werr := observability.WriteTextfile(a.cfg.MetricsTextfile); werr != nil {
			a.logger.Error("metrics textfile export failed", "error", werr)
		}
	}
	return results, err
}

// Serving reports whether an HTTP server was configured.
func (a *App) Serving() bool {
	return a.server != nil
}

// Close shuts down the HTTP server within the configured timeout and closes
// the Kafka writer.
func (a *App) Close() {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.Error("http server shutdown error", "error", err)
		}
	}
	if a.writer != nil {
		if err := a.writer.Close(); err != nil {
			a.logger.Error("kafka writer close error", "error", err)
		}
	}
	a.logger.Info("shutdown complete")
}
