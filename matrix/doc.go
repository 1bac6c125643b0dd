// Package matrix offers a dense numeric matrix and a concurrent multiply
// engine built on a fixed-size worker pool.
//
// The matrix package provides:
//
//   - Matrix[T], an immutable row-major container (New, At, Row, Col, String).
//   - Multiply / MultiplyWith, which compute every output cell as an
//     independent dot-product task, scatter the tasks round-robin over N
//     per-worker queues, and gather one tagged reply per task through a
//     single-value channel.
//   - Engine options for pool size, queue depth, reply timeout, admission
//     control, logging and counters.
//
// A call either returns a fully populated matrix or exactly one error, and it
// joins every goroutine it started before returning.
//
// See the examples in this package for usage patterns.
package matrix
