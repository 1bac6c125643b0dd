// Package concurrency is a small toolkit for fanning numeric work out over a
// fixed pool of goroutines and counting what happens along the way.
//
// What is inside?
//
//	vector/  generic numeric vectors: views, strided gather, Dot
//	matrix/  immutable row-major Matrix[T] and the worker-pool Engine that
//	         multiplies two matrices one dot product per task
//	metrics/ named counters: Dynamic (lock-guarded map) and Fixed
//	         (pre-registered atomic cells)
//	logging/ slog wrapper with engine-specific helpers
//	config/  CONCURRENCY_* environment configuration
//	cmd/     matmul (one-shot multiply) and loadgen (counter load demo)
//
// Quick start:
//
//	a := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	b := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 3, 2)
//	c, err := matrix.Multiply(a, b) // {22 28, 49 64}
//
// Engines are safe for concurrent use; each multiplication owns its pool,
// and every worker is joined before the call returns.
//
//	go get github.com/katalvlaran/concurrency
package concurrency
