// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Dot returns Σ a[i]*b[i] over i in [0, Len()).
//
// Implementation:
//   - Stage 1: reject operands of different length.
//   - Stage 2: accumulate left to right, starting from the zero value of T.
//
// Behavior highlights:
//   - Pure and deterministic: the same operands always give the same bits,
//     including for float types, because the summation order is fixed.
//   - Two empty vectors have dot product zero.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with the "Dot" tag and both lengths).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot[T Number](a, b Vector[T]) (T, error) {
	if len(a.data) != len(b.data) {
		var zero T
		return zero, vectorErrorf(opDot,
			fmt.Errorf("len %d != len %d: %w", len(a.data), len(b.data), ErrDimensionMismatch))
	}

	var sum T
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum, nil
}
