//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/nepal-data-analyzer/internal/adapter/chart"
	"github.com/couchcryptid/nepal-data-analyzer/internal/adapter/filestore"
	"github.com/couchcryptid/nepal-data-analyzer/internal/adapter/kafka"
	"github.com/couchcryptid/nepal-data-analyzer/internal/config"
	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"github.com/couchcryptid/nepal-data-analyzer/internal/observability"
	"github.com/couchcryptid/nepal-data-analyzer/internal/pipeline"
	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

// publishedMessage holds a summary message read back from the topic.
type publishedMessage struct {
	Key         string            `json:"-"`
	Headers     map[string]string `json:"-"`
	Dataset     string            `json:"dataset"`
	GeneratedAt time.Time         `json:"generated_at"`
	Summary     json.RawMessage   `json:"summary"`
}

func TestKafkaWriter_Publish(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	topic := "test-summaries-publish"
	createTopic(t, broker, topic)

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaSummaryTopic: topic}
	w := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = w.Close() })

	at := time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, w.Publish(ctx, []domain.PublishedSummary{
		{Dataset: domain.DatasetEarthquakes, GeneratedAt: at, Summary: domain.EarthquakeSummary{Total: 3, TotalDeaths: 9200}},
	}))

	got := readMessages(ctx, t, broker, topic, 1)
	require.Len(t, got, 1)
	assert.Equal(t, domain.DatasetEarthquakes, got[0].Key)
	assert.Equal(t, domain.DatasetEarthquakes, got[0].Headers["dataset"])
	assert.Equal(t, "2026-03-01T09:30:00Z", got[0].Headers["generated_at"])
	assert.True(t, at.Equal(got[0].GeneratedAt))

	var s domain.EarthquakeSummary
	require.NoError(t, json.Unmarshal(got[0].Summary, &s))
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 9200, s.TotalDeaths)
}

func TestPipelineEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	topic := "test-summaries-pipeline"
	createTopic(t, broker, topic)

	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)))
	t.Cleanup(func() { domain.SetClock(nil) })

	dataDir, outputDir := writeDatasets(t)
	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaSummaryTopic: topic}
	w := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = w.Close() })

	p := pipeline.New(
		filestore.NewLoader(dataDir),
		chart.NewRenderer(6, 4),
		filestore.NewWriter(outputDir),
		pipeline.NewConsole(io.Discard, false),
		discardLogger(),
		observability.NewMetricsForTesting(),
	).WithPublisher(w)

	_, err := p.Run(ctx)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outputDir, domain.ReportFile))

	got := readMessages(ctx, t, broker, topic, 3)
	require.Len(t, got, 3)

	byDataset := make(map[string]publishedMessage, len(got))
	for _, m := range got {
		assert.Equal(t, m.Dataset, m.Key)
		assert.Equal(t, "2026-03-01T09:30:00Z", m.Headers["generated_at"])
		byDataset[m.Key] = m
	}

	var eq domain.EarthquakeSummary
	require.NoError(t, json.Unmarshal(byDataset[domain.DatasetEarthquakes].Summary, &eq))
	assert.Equal(t, 3, eq.Total)
	assert.Equal(t, 9200, eq.TotalDeaths)

	var temp domain.TemperatureSummary
	require.NoError(t, json.Unmarshal(byDataset[domain.DatasetTemperatures].Summary, &temp))
	require.Len(t, temp.Cities, 2)
	assert.Equal(t, domain.CityKathmandu, temp.Cities[0].City)

	var exams domain.ExamSummary
	require.NoError(t, json.Unmarshal(byDataset[domain.DatasetExams].Summary, &exams))
	assert.Equal(t, "Kathmandu", exams.BestDistrict)
	assert.Equal(t, 680, exams.TotalStudents)
}

// --- helpers ---

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("test-cluster"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrl.Close()

	require.NoError(t, ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// readMessages reads n messages from the start of the topic's only partition.
func readMessages(ctx context.Context, t *testing.T, broker, topic string, n int) []publishedMessage {
	t.Helper()
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  1 << 20,
	})
	defer r.Close()
	require.NoError(t, r.SetOffset(kafkago.FirstOffset))

	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	out := make([]publishedMessage, 0, n)
	for len(out) < n {
		msg, err := r.ReadMessage(readCtx)
		require.NoError(t, err, "read summary message")

		var m publishedMessage
		require.NoError(t, json.Unmarshal(msg.Value, &m))
		m.Key = string(msg.Key)
		m.Headers = make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			m.Headers[h.Key] = string(h.Value)
		}
		out = append(out, m)
	}
	return out
}

func writeDatasets(t *testing.T) (dataDir, outputDir string) {
	t.Helper()
	base := t.TempDir()
	dataDir = filepath.Join(base, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	files := map[string]string{
		filestore.EarthquakesFile:  "year,magnitude,deaths\n2015,7.8,9000\n2015,6.8,200\n2023,5.1,0\n",
		filestore.TemperaturesFile: "month,kathmandu,pokhara\nJan,10.1,13.0\nJul,24.1,26.4\n",
		filestore.ExamsFile:        "district,students,pass_percent\nKathmandu,320,91.5\nKaski,210,84.0\nKaski,150,88.0\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
	}
	return dataDir, filepath.Join(base, "outputs")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
