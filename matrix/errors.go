// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every exported function returns these sentinels (possibly wrapped
// with an operation tag) and tests check them via errors.Is. No function
// panics on user-triggered error conditions; the Must* helpers and option
// constructors are the documented exceptions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added with matrixErrorf(tag, err) at
// the outer boundary; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape -> dimension mismatch -> admission/context
// -> per-task failures (panic, delivery, timeout).

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions: a buffer whose
	// length is not rows*cols, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDeliveryFailed indicates a reply channel closed without a value.
	// It means the one-reply-per-task protocol was broken and is treated as
	// fatal for the multiply call.
	ErrDeliveryFailed = errors.New("matrix: reply channel closed without a value")

	// ErrReplyTimeout indicates the dispatcher gave up waiting for a reply
	// after the configured per-reply timeout.
	ErrReplyTimeout = errors.New("matrix: reply timed out")

	// ErrWorkerPanic indicates a worker recovered from a panic while computing
	// a task. The panic value is included in the wrapping message.
	ErrWorkerPanic = errors.New("matrix: worker panicked")
)
