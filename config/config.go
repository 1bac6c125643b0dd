// SPDX-License-Identifier: MIT

// Package config loads engine and logging settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/concurrency/logging"
	"github.com/katalvlaran/concurrency/matrix"
)

// ErrInvalidConfig wraps every parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config controls the multiply engine and its logger.
type Config struct {
	Workers      int           `env:"CONCURRENCY_WORKERS"       envDefault:"4"`
	QueueDepth   int           `env:"CONCURRENCY_QUEUE_DEPTH"   envDefault:"16"`
	ReplyTimeout time.Duration `env:"CONCURRENCY_REPLY_TIMEOUT" envDefault:"0s"`
	MaxInFlight  int64         `env:"CONCURRENCY_MAX_IN_FLIGHT" envDefault:"0"`
	LogLevel     string        `env:"CONCURRENCY_LOG_LEVEL"     envDefault:"info"`
	LogFormat    string        `env:"CONCURRENCY_LOG_FORMAT"    envDefault:"text"`
}

// Load parses the process environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom parses environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the engine options would panic on.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}
	if c.QueueDepth < 0 {
		return fmt.Errorf("queue depth %d: %w", c.QueueDepth, ErrInvalidConfig)
	}
	if c.ReplyTimeout < 0 {
		return fmt.Errorf("reply timeout %s: %w", c.ReplyTimeout, ErrInvalidConfig)
	}
	if c.MaxInFlight < 0 {
		return fmt.Errorf("max in flight %d: %w", c.MaxInFlight, ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log format %q: %w", c.LogFormat, ErrInvalidConfig)
	}
	return nil
}

// Logger builds the configured logger on stderr.
func (c Config) Logger() *logging.Logger {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if strings.ToLower(c.LogFormat) == FormatJSON {
		return logging.NewJSONLogger(level)
	}
	return logging.NewTextLogger(level)
}

// EngineOptions converts the config into matrix engine options. counters may
// be nil. Call Validate first; invalid values make the options panic.
func (c Config) EngineOptions(logger *logging.Logger, counters matrix.Counter) []matrix.Option {
	opts := []matrix.Option{
		matrix.WithWorkers(c.Workers),
		matrix.WithQueueDepth(c.QueueDepth),
		matrix.WithReplyTimeout(c.ReplyTimeout),
		matrix.WithMaxInFlight(c.MaxInFlight),
		matrix.WithLogger(logger),
	}
	if counters != nil {
		opts = append(opts, matrix.WithCounters(counters))
	}
	return opts
}
