// SPDX-License-Identifier: MIT

// Package matrix - scatter/gather dispatcher.
//
// Purpose:
//   - Turn every output cell of a×b into an independent dot-product task.
//   - Assign tasks to a fixed pool by destination index (idx % N), so the
//     cell→worker mapping is static and reproducible. There is no work
//     stealing: a worker with a short queue idles while others finish.
//   - Gather replies in submission order; only the dispatcher writes the
//     output buffer, so it needs no lock.
//
// Lifecycle of one call:
//
//	validate ─► spawn N workers ─► scatter tasks ─► close queues
//	        ─► gather replies ─► cancel + join ─► return
//
// Complexity:
//   - Tasks: r*c. Column gathers: r*c copies of length n.

package matrix

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/concurrency/vector"
)

// dispatch runs one multiply on a fresh pool and returns the filled buffer.
// Operands must already be validated (a.c == b.r, both non-nil); compute is
// the per-cell kernel (vector.Dot in production).
//
// Implementation:
//   - Stage 1 (pool): one buffered queue and one goroutine per worker.
//   - Stage 2 (scatter): row-major over (i,j); row view + gathered column +
//     reply channel → queue idx % N; keep the reply receiver.
//   - Stage 3 (gather): await replies in submission order; first failure wins.
//   - Stage 4 (teardown, deferred): cancel the pool context, close queues,
//     wait for every worker.
//
// Behavior highlights:
//   - A failure during scatter or gather cancels the pool context so workers
//     drain their remaining tasks without computing them.
//   - Workers never block: replies are buffered and queues are closed in
//     every exit path, so the join always completes.
func dispatch[T vector.Number](ctx context.Context, e *Engine, a, b *Matrix[T], compute kernel[T]) ([]T, error) {
	rows, cols := a.r, b.c
	cells := rows * cols
	out := make([]T, cells)
	if cells == 0 {
		return out, nil
	}

	poolCtx, cancel := context.WithCancel(ctx)
	n := e.workers
	queues := make([]chan task[T], n)
	var g errgroup.Group
	for k := range queues {
		queues[k] = make(chan task[T], e.queueDepth)
		w := worker[T]{id: k, queue: queues[k], compute: compute, engine: e}
		e.inc(ctx, CounterPoolSpawned)
		g.Go(func() error {
			w.run(poolCtx)
			return nil
		})
	}

	closed := false
	closeQueues := func() {
		if closed {
			return
		}
		closed = true
		for _, q := range queues {
			close(q)
		}
	}
	defer func() {
		cancel()
		closeQueues()
		_ = g.Wait() // workers always return nil; Wait is the join
	}()

	// Scatter.
	replies := make([]chan reply[T], 0, cells)
	var i, j, idx int
	for i = 0; i < rows; i++ {
		row := a.row(i)
		for j = 0; j < cols; j++ {
			col, err := b.col(j)
			if err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			idx = i*cols + j
			rc := make(chan reply[T], 1)
			select {
			case queues[idx%n] <- task[T]{idx: idx, row: row, col: col, reply: rc}:
			case <-ctx.Done():
				e.logger.WithShape(rows, cols).DebugContext(ctx, "submit cancelled", "task", idx)
				return nil, matrixErrorf(opMul, fmt.Errorf("submit task %d: %w", idx, ctx.Err()))
			}
			replies = append(replies, rc)
		}
	}
	closeQueues()

	// Gather, in submission order.
	for k, rc := range replies {
		r, err := await(ctx, k, rc, e.replyTimeout)
		if err != nil {
			return nil, matrixErrorf(opGather, err)
		}
		if r.err != nil {
			return nil, matrixErrorf(opGather, r.err)
		}
		out[r.idx] = r.value
	}

	return out, nil
}
