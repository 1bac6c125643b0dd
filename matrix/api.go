// SPDX-License-Identifier: MIT
// Package matrix: public multiply surface.
//
// Purpose:
//   - Declare the Engine and its entry points (Multiply, MustMultiply, MultiplyWith).
//   - Define operation tags and counter names shared by the dispatcher and workers.
//
// Notes:
//   - The scatter/gather kernel lives in impl_engine.go, the worker loop and
//     the reply protocol in worker.go.

package matrix

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/concurrency/logging"
	"github.com/katalvlaran/concurrency/vector"
)

// Operation name constants for unified error wrapping.
const (
	opMul    = "Mul"
	opAdmit  = "Mul: admit"
	opGather = "Mul: gather"
)

// Counter names emitted by the engine.
const (
	CounterMultiplyCalls  = "matrix.multiply.calls"
	CounterMultiplyErrors = "matrix.multiply.errors"
	CounterPoolSpawned    = "matrix.pool.spawned"
	counterWorkerPrefix   = "matrix.worker."
	counterWorkerSuffix   = ".tasks"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// WorkerCounter returns the per-worker task counter name for worker k.
func WorkerCounter(k int) string {
	return counterWorkerPrefix + strconv.Itoa(k) + counterWorkerSuffix
}

// CounterNames lists every counter an engine with the given pool size may
// increment, in a stable order. Use it to pre-register a fixed registry.
func CounterNames(workers int) []string {
	names := []string{CounterMultiplyCalls, CounterMultiplyErrors, CounterPoolSpawned}
	for k := 0; k < workers; k++ {
		names = append(names, WorkerCounter(k))
	}

	return names
}

// Engine runs matrix multiplications on a fixed-size worker pool.
//
// Each call builds its own pool of Workers() goroutines, one task queue per
// goroutine, and joins every goroutine before returning. Engines hold no
// per-call state and are safe for concurrent use; WithMaxInFlight bounds how
// many calls run at once.
type Engine struct {
	workers      int
	queueDepth   int
	replyTimeout time.Duration
	admit        *semaphore.Weighted // nil when unbounded
	logger       *logging.Logger
	counters     Counter
}

// NewEngine builds an Engine from options over the documented defaults.
func NewEngine(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	e := &Engine{
		workers:      o.workers,
		queueDepth:   o.queueDepth,
		replyTimeout: o.replyTimeout,
		logger:       o.logger,
		counters:     o.counters,
	}
	if o.maxInFlight > 0 {
		e.admit = semaphore.NewWeighted(o.maxInFlight)
	}

	return e
}

// Workers returns the pool size N.
func (e *Engine) Workers() int { return e.workers }

// defaultEngine backs Multiply and MustMultiply. It carries no mutable state.
var defaultEngine = NewEngine()

// Multiply computes a×b on the default engine (DefaultWorkers workers, no
// timeout, no instrumentation).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows), returned before
//     any worker starts.
//   - ErrWorkerPanic / ErrDeliveryFailed for broken tasks.
//
// Complexity:
//   - Time O(r*n*c) split over the pool, Space O(r*c + r*c*n) for the
//     result and the gathered columns.
func Multiply[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return MultiplyWith(context.Background(), defaultEngine, a, b)
}

// MustMultiply is Multiply that panics on error.
func MustMultiply[T vector.Number](a, b *Matrix[T]) *Matrix[T] {
	m, err := Multiply(a, b)
	if err != nil {
		panic(err)
	}

	return m
}

// MultiplyWith computes a×b on e, honoring ctx for admission, submission and
// every reply wait. A nil e uses the default engine.
//
// Implementation:
//   - Stage 1: validate operands; no goroutine is started on failure.
//   - Stage 2: acquire an admission slot when the engine is bounded.
//   - Stage 3: scatter one task per output cell, gather replies in order,
//     join the pool (see dispatch).
//
// Behavior highlights:
//   - Returns either a fully populated matrix or exactly one error.
//   - No goroutine started by the call outlives it. On timeout or
//     cancellation, queued tasks are skipped but a dot product already
//     running finishes first, so the call returns at the deadline plus at
//     most one in-flight dot product per worker.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ctx.Err() (admission, submission, gather), wrapped.
//   - ErrReplyTimeout, ErrDeliveryFailed, ErrWorkerPanic (per task).
func MultiplyWith[T vector.Number](ctx context.Context, e *Engine, a, b *Matrix[T]) (*Matrix[T], error) {
	if e == nil {
		e = defaultEngine
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if e.admit != nil {
		if err := e.admit.Acquire(ctx, 1); err != nil {
			return nil, matrixErrorf(opAdmit, err)
		}
		defer e.admit.Release(1)
	}

	start := time.Now()
	e.inc(ctx, CounterMultiplyCalls)
	buf, err := dispatch(ctx, e, a, b, vector.Dot[T])
	e.observe(ctx, a.r, b.c, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return fromBuffer(buf, a.r, b.c), nil
}

// inc increments a counter when instrumentation is on. A failing or
// panicking counter is logged and otherwise ignored.
func (e *Engine) inc(ctx context.Context, name string) {
	if e.counters == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			e.logger.LogCounterFailure(ctx, name, fmt.Errorf("panic: %v", p))
		}
	}()
	if err := e.counters.Inc(name); err != nil {
		e.logger.LogCounterFailure(ctx, name, err)
	}
}

// observe records the outcome of one call.
func (e *Engine) observe(ctx context.Context, rows, cols int, d time.Duration, err error) {
	if err != nil {
		e.inc(ctx, CounterMultiplyErrors)
	}
	e.logger.LogMultiply(ctx, rows, cols, e.workers, rows*cols, d, err)
}
