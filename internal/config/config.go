package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Bounds for worker count
const (
	MinWorkers = 1
	MaxWorkers = 10
)

// VideoDomains lists host substrings the extractor understands natively.
// URLs on these hosts bypass page scraping entirely.
var VideoDomains = []string{"youtube.com", "youtu.be", "vimeo.com", "dailymotion.com"}

// Config holds application settings. Every field has a compiled-in default;
// environment variables may override them, there are no CLI flags.
type Config struct {
	Env          string        `env:"DEODER_ENV" env-default:"local"`
	MaxRetries   int           `env:"DEODER_MAX_RETRIES" env-default:"10"`
	OutputDir    string        `env:"DEODER_OUTPUT_DIR" env-default:"downloads"`
	MaxParallel  int           `env:"DEODER_MAX_PARALLEL" env-default:"5"`
	FetchTimeout time.Duration `env:"DEODER_FETCH_TIMEOUT" env-default:"10s"`
	FailedLog    string        `env:"DEODER_FAILED_LOG" env-default:"failed.txt"`
}

// New reads configuration from the environment, falling back to defaults
func New() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.MaxParallel < MinWorkers {
		cfg.MaxParallel = MinWorkers
	}
	if cfg.MaxParallel > MaxWorkers {
		cfg.MaxParallel = MaxWorkers
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}

	return &cfg, nil
}
