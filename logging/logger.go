// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with the field names used across the
// engine, so every multiply call and counter failure is reported the same way.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with engine-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler on stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a human-readable Logger on stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewTextLoggerTo(os.Stderr, level)
}

// NewTextLoggerTo creates a human-readable Logger writing to w.
func NewTextLoggerTo(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that emits JSON lines on stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewJSONLoggerTo(os.Stderr, level)
}

// NewJSONLoggerTo creates a JSON Logger writing to w.
func NewJSONLoggerTo(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error"
// (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// WithWorker tags the logger with a worker index.
func (l *Logger) WithWorker(id int) *Logger {
	return &Logger{Logger: l.Logger.With("worker", id)}
}

// WithShape tags the logger with an operand shape.
func (l *Logger) WithShape(rows, cols int) *Logger {
	return &Logger{Logger: l.Logger.With("rows", rows, "cols", cols)}
}

// LogMultiply logs the outcome of one multiply call. Success is logged at
// debug, failure at error.
func (l *Logger) LogMultiply(ctx context.Context, rows, cols, workers, tasks int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "multiply failed",
			"rows", rows,
			"cols", cols,
			"workers", workers,
			"tasks", tasks,
			"duration", d,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "multiply completed",
		"rows", rows,
		"cols", cols,
		"workers", workers,
		"tasks", tasks,
		"duration", d,
	)
}

// LogCounterFailure logs a counter that could not be incremented.
func (l *Logger) LogCounterFailure(ctx context.Context, name string, err error) {
	l.DebugContext(ctx, "counter increment failed",
		"counter", name,
		"error", err,
	)
}
