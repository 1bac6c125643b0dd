// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiply Engine.
// This file defines:
//   - Option (functional options over internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options over defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"time"

	"github.com/katalvlaran/concurrency/logging"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the fixed pool size N. It bounds concurrency and is
	// independent of matrix size.
	DefaultWorkers = 4

	// DefaultQueueDepth is the buffer of each worker's task queue. Zero makes
	// every submission a rendezvous with the worker.
	DefaultQueueDepth = 16

	// DefaultReplyTimeout disables the per-reply deadline.
	DefaultReplyTimeout = time.Duration(0)

	// DefaultMaxInFlight disables admission control.
	DefaultMaxInFlight = int64(0)
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid      = "matrix: WithWorkers: n must be >= 1"
	panicQueueDepthInvalid   = "matrix: WithQueueDepth: n must be >= 0"
	panicReplyTimeoutInvalid = "matrix: WithReplyTimeout: d must be >= 0"
	panicMaxInFlightInvalid  = "matrix: WithMaxInFlight: n must be >= 0"
)

// Counter receives named increments from the engine. metrics.Registry
// satisfies it.
type Counter interface {
	Inc(name string) error
}

// Option mutates internal options. Safe to apply repeatedly; the last writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	workers      int             // >= 1; DefaultWorkers
	queueDepth   int             // >= 0; DefaultQueueDepth
	replyTimeout time.Duration   // >= 0; 0 means wait for ctx only
	maxInFlight  int64           // >= 0; 0 means unbounded
	logger       *logging.Logger // never nil after gatherOptions
	counters     Counter         // nil disables instrumentation
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		workers:      DefaultWorkers,
		queueDepth:   DefaultQueueDepth,
		replyTimeout: DefaultReplyTimeout,
		maxInFlight:  DefaultMaxInFlight,
	}
}

// gatherOptions applies opts over the defaults and fills the logger.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logging.NoopLogger()
	}

	return o
}

// ---------- Constructors (WithX) ----------

// WithWorkers sets the pool size N.
// Errors:
//   - Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithQueueDepth sets the buffer size of every worker queue.
// Errors:
//   - Panics when n < 0.
func WithQueueDepth(n int) Option {
	if n < 0 {
		panic(panicQueueDepthInvalid)
	}

	return func(o *options) { o.queueDepth = n }
}

// WithReplyTimeout bounds each gather-phase receive. A reply that does not
// arrive within d fails the call with ErrReplyTimeout. Zero disables it.
// The call returns only after the pool is joined, so it can outlast d by the
// dot product each worker was already computing (at most one per worker).
// Errors:
//   - Panics when d < 0.
func WithReplyTimeout(d time.Duration) Option {
	if d < 0 {
		panic(panicReplyTimeoutInvalid)
	}

	return func(o *options) { o.replyTimeout = d }
}

// WithMaxInFlight limits how many multiply calls one Engine runs at once.
// Extra callers wait for a slot or for their context. Zero means unbounded.
// Errors:
//   - Panics when n < 0.
func WithMaxInFlight(n int64) Option {
	if n < 0 {
		panic(panicMaxInFlightInvalid)
	}

	return func(o *options) { o.maxInFlight = n }
}

// WithLogger sets the structured logger. nil restores the no-op logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCounters enables instrumentation into c (see CounterNames).
func WithCounters(c Counter) Option {
	return func(o *options) { o.counters = c }
}
