// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the dispatcher and the reply protocol.
//
// Purpose:
//   - Expose the unexported dispatch kernel hook, await and option snapshot to
//     matrix_test ONLY. The file ends in _test.go, so it is invisible to
//     production builds.

import (
	"context"
	"time"

	"github.com/katalvlaran/concurrency/vector"
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWorkersInvalid_TestOnly      = panicWorkersInvalid
	PanicQueueDepthInvalid_TestOnly   = panicQueueDepthInvalid
	PanicReplyTimeoutInvalid_TestOnly = panicReplyTimeoutInvalid
	PanicMaxInFlightInvalid_TestOnly  = panicMaxInFlightInvalid
)

// OptionsSnapshot is a read-only view of the effective engine options.
type OptionsSnapshot struct {
	Workers      int
	QueueDepth   int
	ReplyTimeout time.Duration
	MaxInFlight  int64
	HasLogger    bool
	HasCounters  bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{
		Workers:      o.workers,
		QueueDepth:   o.queueDepth,
		ReplyTimeout: o.replyTimeout,
		MaxInFlight:  o.maxInFlight,
		HasLogger:    o.logger != nil,
		HasCounters:  o.counters != nil,
	}
}

// MultiplyWithKernel_TestOnly runs the full dispatcher with a custom per-cell
// kernel, bypassing validation.
func MultiplyWithKernel_TestOnly[T vector.Number](
	ctx context.Context, e *Engine, a, b *Matrix[T], compute func(x, y vector.Vector[T]) (T, error),
) ([]T, error) {
	return dispatch(ctx, e, a, b, compute)
}

// AwaitClosed_TestOnly awaits a reply channel that is closed without a value.
func AwaitClosed_TestOnly(ctx context.Context) error {
	rc := make(chan reply[int])
	close(rc)
	_, err := await(ctx, 0, rc, 0)
	return err
}

// AwaitSilent_TestOnly awaits a reply channel that never receives a value.
func AwaitSilent_TestOnly(ctx context.Context, timeout time.Duration) error {
	rc := make(chan reply[int], 1)
	_, err := await(ctx, 0, rc, timeout)
	return err
}
