// SPDX-License-Identifier: MIT

// Package vector provides the fixed-length numeric Vector used by the matrix
// engine as a read-only row or column operand, and the Dot kernel that every
// engine task evaluates.
//
// What & Why:
//
//	A Vector is either a zero-copy view over a contiguous slice (a matrix row)
//	or an owned copy materialized from a strided walk (a matrix column). Once
//	built its length never changes, so a Vector can be handed to another
//	goroutine without synchronization as long as the backing row is not
//	mutated, which the matrix package guarantees.
//
// Element types:
//
//	Any Go integer or float kind (see Number). Accumulation always starts at
//	the zero value of T and proceeds left to right, so integer results are
//	exact and float results are reproducible bit-for-bit.
//
// Complexity:
//
//	New, Len, At: O(1). Gather, Values: O(n) copy. Dot, Add, Mul, Sum: O(n).
package vector
