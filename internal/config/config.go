package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Fixed directory names under the base directory.
const (
	DataDirName   = "data"
	OutputDirName = "outputs"
)

// Config holds all analyzer settings, populated from environment variables.
type Config struct {
	BaseDir   string
	DataDir   string
	OutputDir string

	LogLevel  string
	LogFormat string

	// Optional health/readiness/metrics server. Empty disables it.
	HTTPAddr        string
	ShutdownTimeout time.Duration
	// Optional Prometheus textfile written after each run. Empty disables it.
	MetricsTextfile string

	// Optional summary publishing. Disabled when no brokers are configured.
	KafkaBrokers      []string
	KafkaSummaryTopic string
	PublishEnabled    bool

	ChartWidthIn  float64
	ChartHeightIn float64
}

// Load reads configuration from environment variables, applying defaults where
// unset. A .env file in the working directory is read first; variables already
// set in the environment take precedence over it.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	width, err := parsePositiveFloat("CHART_WIDTH_IN", "10")
	if err != nil {
		return nil, err
	}
	height, err := parsePositiveFloat("CHART_HEIGHT_IN", "6")
	if err != nil {
		return nil, err
	}

	baseDir := sharedcfg.EnvOrDefault("ANALYZER_BASE_DIR", ".")

	var brokers []string
	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}

	cfg := &Config{
		BaseDir:   baseDir,
		DataDir:   filepath.Join(baseDir, DataDirName),
		OutputDir: filepath.Join(baseDir, OutputDirName),

		LogLevel:  strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "text")),

		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		ShutdownTimeout: shutdownTimeout,
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),

		KafkaBrokers:      brokers,
		KafkaSummaryTopic: sharedcfg.EnvOrDefault("KAFKA_SUMMARY_TOPIC", "nepal-analysis-summaries"),
		PublishEnabled:    len(brokers) > 0,

		ChartWidthIn:  width,
		ChartHeightIn: height,
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	if cfg.PublishEnabled && cfg.KafkaSummaryTopic == "" {
		return nil, errors.New("KAFKA_SUMMARY_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parsePositiveFloat(key, fallback string) (float64, error) {
	s := sharedcfg.EnvOrDefault(key, fallback)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return v, nil
}
