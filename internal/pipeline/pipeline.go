package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"github.com/couchcryptid/nepal-data-analyzer/internal/observability"
)

// DatasetLoader reads the three input datasets.
type DatasetLoader interface {
	LoadEarthquakes() ([]domain.EarthquakeRecord, error)
	LoadTemperatures() ([]domain.TemperatureRecord, error)
	LoadExams() ([]domain.ExamRecord, error)
}

// ChartRenderer draws one chart per dataset to a file path.
type ChartRenderer interface {
	RenderEarthquakes(path string, s domain.EarthquakeSummary) error
	RenderTemperatures(path string, records []domain.TemperatureRecord) error
	RenderExams(path string, s domain.ExamSummary) error
}

// ArtifactWriter stores statistics tables and the report in the output directory.
type ArtifactWriter interface {
	EnsureDir() error
	Path(name string) string
	WriteTable(name string, t domain.Table) (string, error)
	WriteText(name, text string) (string, error)
}

// SummaryPublisher forwards dataset summaries to an external sink.
type SummaryPublisher interface {
	Publish(ctx context.Context, summaries []domain.PublishedSummary) error
}

// Pipeline runs one analysis: load, analyze each dataset, then report.
// Stages run strictly in order and the first failure aborts the rest.
type Pipeline struct {
	loader    DatasetLoader
	charts    ChartRenderer
	writer    ArtifactWriter
	publisher SummaryPublisher
	console   *Console
	logger    *slog.Logger
	metrics   *observability.Metrics

	ready  atomic.Bool
	report atomic.Pointer[string]
}

// New creates a Pipeline with the given stages and observability.
func New(loader DatasetLoader, charts ChartRenderer, writer ArtifactWriter, console *Console, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:  loader,
		charts:  charts,
		writer:  writer,
		console: console,
		logger:  logger,
		metrics: metrics,
	}
}

// WithPublisher enables publishing of the run's summaries after the report is
// written. Publish failures are logged and do not fail the run.
func (p *Pipeline) WithPublisher(pub SummaryPublisher) *Pipeline {
	p.publisher = pub
	return p
}

// CheckReadiness returns nil once a run has completed successfully.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("analysis has not completed yet")
	}
	return nil
}

// LatestReport returns the report text of the last completed run.
func (p *Pipeline) LatestReport() (string, bool) {
	text := p.report.Load()
	if text == nil {
		return "", false
	}
	return *text, true
}

// Run executes the full analysis. The context is checked between stages; a
// cancelled context aborts the run before the next stage starts.
func (p *Pipeline) Run(ctx context.Context) (domain.Results, error) {
	p.logger.Info("pipeline started")
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	start := time.Now()
	p.console.Banner("SIMPLE NEPALESE DATA ANALYZER")

	results, err := p.run(ctx)
	if err != nil {
		p.metrics.LastRunSuccess.Set(0)
		return results, err
	}

	p.console.Banner("ANALYSIS COMPLETE!")
	p.console.Println("Check the 'outputs' folder for charts and data.")

	p.metrics.LastRunSuccess.Set(1)
	p.ready.Store(true)
	p.logger.Info("pipeline finished", "duration", time.Since(start))
	return results, nil
}

func (p *Pipeline) run(ctx context.Context) (domain.Results, error) {
	var (
		data    domain.Datasets
		results domain.Results
	)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"prepare", p.writer.EnsureDir},
		{"load", func() (err error) {
			data, err = p.load()
			return err
		}},
		{domain.DatasetEarthquakes, func() error {
			s, err := p.analyzeEarthquakes(data.Earthquakes)
			if err == nil {
				results.Earthquakes = &s
			}
			return err
		}},
		{domain.DatasetTemperatures, func() error {
			s, err := p.analyzeTemperature(data.Temperatures)
			if err == nil {
				results.Temperatures = &s
			}
			return err
		}},
		{domain.DatasetExams, func() error {
			s, err := p.analyzeExams(data.Exams)
			if err == nil {
				results.Exams = &s
			}
			return err
		}},
		{"report", func() error {
			return p.writeReport(results)
		}},
	}

	for _, step := range steps {
		if err := p.stage(ctx, step.name, step.fn); err != nil {
			return results, err
		}
	}

	p.publish(ctx, results)
	return results, nil
}

// stage runs fn with timing and failure accounting.
func (p *Pipeline) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	p.metrics.StageDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		p.metrics.StageFailures.WithLabelValues(name).Inc()
		p.logger.Debug("stage failed", "stage", name, "duration", elapsed, "error", err)
		return err
	}
	p.logger.Debug("stage complete", "stage", name, "duration", elapsed)
	return nil
}

func (p *Pipeline) publish(ctx context.Context, results domain.Results) {
	if p.publisher == nil {
		return
	}
	summaries := domain.SummariesFor(results)
	if err := p.publisher.Publish(ctx, summaries); err != nil {
		p.metrics.StageFailures.WithLabelValues("publish").Inc()
		p.logger.Error("publish summaries failed", "error", err)
		return
	}
	p.metrics.SummariesSent.Add(float64(len(summaries)))
	p.logger.Info("summaries published", "count", len(summaries))
}
