// SPDX-License-Identifier: MIT

// Package matrix - worker loop and the task/reply protocol.
//
// Protocol:
//   - A task carries its destination index, a row view, a gathered column and
//     a reply channel of capacity 1.
//   - The worker that receives a task sends exactly one reply on that channel,
//     success or failure, and never closes it. Capacity 1 makes that send
//     non-blocking, so a worker can never be stuck on an abandoned call.
//   - The dispatcher is the only receiver of each reply channel.

package matrix

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/concurrency/vector"
)

// kernel computes one output cell.
type kernel[T vector.Number] func(a, b vector.Vector[T]) (T, error)

// task is one output cell: destination index, operands, reply channel.
type task[T vector.Number] struct {
	idx   int              // i*out.Cols()+j
	row   vector.Vector[T] // view of a's row i
	col   vector.Vector[T] // owned copy of b's column j
	reply chan<- reply[T]  // capacity 1, exactly one send
}

// reply is the tagged result of a task.
type reply[T vector.Number] struct {
	idx   int
	value T
	err   error // non-nil means value is meaningless
}

// worker consumes one queue. Workers never talk to each other.
type worker[T vector.Number] struct {
	id      int
	queue   <-chan task[T]
	compute kernel[T]
	engine  *Engine
}

// run processes tasks in FIFO order until the queue is closed and drained.
func (w worker[T]) run(ctx context.Context) {
	name := WorkerCounter(w.id)
	for t := range w.queue {
		t.reply <- w.process(ctx, t) // never blocks: capacity 1, single sender
		w.engine.inc(ctx, name)
	}
}

// process evaluates one task and always returns a reply for it.
// A cancelled ctx short-circuits the computation; a panic in the kernel is
// recovered into ErrWorkerPanic.
func (w worker[T]) process(ctx context.Context, t task[T]) (r reply[T]) {
	r.idx = t.idx
	if err := ctx.Err(); err != nil {
		r.err = err
		return r
	}
	defer func() {
		if p := recover(); p != nil {
			w.engine.logger.WithWorker(w.id).ErrorContext(ctx, "task panicked", "task", t.idx, "panic", p)
			r.err = fmt.Errorf("worker %d, task %d: %v: %w", w.id, t.idx, p, ErrWorkerPanic)
		}
	}()

	v, err := w.compute(t.row, t.col)
	if err != nil {
		r.err = fmt.Errorf("worker %d, task %d: %w", w.id, t.idx, err)
		return r
	}
	r.value = v

	return r
}

// await receives the reply for task idx.
//
// Errors:
//   - ErrDeliveryFailed when the channel is closed without a value.
//   - ErrReplyTimeout when timeout > 0 elapses first.
//   - ctx.Err() when the context ends first.
func await[T vector.Number](ctx context.Context, idx int, rc <-chan reply[T], timeout time.Duration) (reply[T], error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case r, ok := <-rc:
		if !ok {
			return reply[T]{}, fmt.Errorf("task %d: %w", idx, ErrDeliveryFailed)
		}
		return r, nil
	case <-expired:
		return reply[T]{}, fmt.Errorf("task %d after %s: %w", idx, timeout, ErrReplyTimeout)
	case <-ctx.Done():
		return reply[T]{}, fmt.Errorf("task %d: %w", idx, ctx.Err())
	}
}
