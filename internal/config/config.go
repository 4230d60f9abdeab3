package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. CALCULATOR_HTTP_ADDR.
const Prefix = "CALCULATOR"

// Config holds the service settings read from the environment.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`

	// OTLP exporters read their endpoints from the standard OTEL_* variables.
	TracingEnabled   bool `envconfig:"TRACING_ENABLED" default:"true"`
	MetricsEnabled   bool `envconfig:"METRICS_ENABLED" default:"true"`
	LogExportEnabled bool `envconfig:"LOG_EXPORT_ENABLED" default:"false"`
}

// Load reads .env when present, then fills Config from the environment.
// Variables already set in the process are not overridden by .env.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("%s_SHUTDOWN_TIMEOUT must be positive, got %s", Prefix, cfg.ShutdownTimeout)
	}

	return cfg, nil
}

func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}
