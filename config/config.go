package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-simpler.org/env"
)

type Config struct {
	AppEnv            string        `env:"APP_ENV" default:"dev"`
	LogLevel          string        `env:"LOG_LEVEL" default:"info"`
	LexiconPath       string        `env:"LEXICON_PATH"`
	ScoreCacheTTL     time.Duration `env:"SCORE_CACHE_TTL" default:"10m"`
	ScoreCacheCleanup time.Duration `env:"SCORE_CACHE_CLEANUP" default:"15m"`
}

// Load decodes the process environment into a Config. Call LoadEnv first to
// pick up the .env file for the current APP_ENV.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CacheEnabled reports whether lexical scores should be memoized.
func (c *Config) CacheEnabled() bool {
	return c.ScoreCacheTTL > 0
}

func validate(cfg *Config) error {
	if cfg.ScoreCacheTTL < 0 {
		return errors.New("SCORE_CACHE_TTL must not be negative")
	}
	if cfg.ScoreCacheTTL > 0 && cfg.ScoreCacheCleanup <= 0 {
		return errors.New("SCORE_CACHE_CLEANUP must be positive when caching is enabled")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	return nil
}
