// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep the dispatcher minimal by delegating nil/shape checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    add the operation tag on top.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/concurrency/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape checks that rows/cols are non-negative and that a buffer of
// length n can back a rows×cols matrix.
// Complexity: O(1).
func validateShape(rows, cols, n int) error {
	if rows < 0 || cols < 0 || cellsOverflow(rows, cols) {
		return validatorErrorf("validateShape", fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}
	if rows*cols != n {
		return validatorErrorf("validateShape",
			fmt.Errorf("%dx%d needs %d elements, got %d: %w", rows, cols, rows*cols, n, ErrDimensionMismatch))
	}

	return nil
}

// cellsOverflow reports whether rows*cols does not fit in an int.
// Both arguments must be non-negative.
func cellsOverflow(rows, cols int) bool {
	return cols != 0 && rows > math.MaxInt/cols
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T vector.Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows → a.Rows×b.Cols fits in an int.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadShape when the a.Rows×b.Cols
// product has more cells than an int can count.
// Complexity: O(1).
func ValidateMulCompatible[T vector.Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("a is %dx%d, b is %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	if cellsOverflow(a.r, b.c) {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("product is %dx%d: %w", a.r, b.c, ErrBadShape))
	}

	return nil
}
