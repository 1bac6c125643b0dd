// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ". Callers match with errors.Is;
// functions in this package may wrap a sentinel with an operation tag.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different length
	// (Dot, Add, Mul).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates an element index outside [0, Len()) or a
	// strided gather that would read past the source slice.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrBadStride indicates a non-positive stride for a multi-element gather.
	ErrBadStride = errors.New("vector: stride must be > 0")
)

// Operation tags used in error wrapping.
const (
	opDot    = "Dot"
	opAdd    = "Add"
	opMul    = "Mul"
	opAt     = "At"
	opGather = "Gather"
)

// vectorErrorf wraps err with an operation tag, keeping errors.Is intact.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
