// SPDX-License-Identifier: MIT

// Package vector - fixed-length numeric vector.
//
// Purpose:
//   - Provide the row/column operand of a matrix task.
//   - Keep construction explicit: New views, Gather copies.
//   - Never grow or shrink after construction.

package vector

import "fmt"

// Vector is a fixed-length, read-only sequence of numeric elements.
// The zero Vector has length 0 and is ready to use.
type Vector[T Number] struct {
	data []T // len(data) is the vector length; never resliced after construction
}

// New wraps data as a Vector without copying.
// Implementation:
//   - Stage 1: capture the slice header; length is frozen from here on.
//
// Notes:
//   - The caller keeps ownership of data and must not mutate it while the
//     Vector is in use. The matrix package only passes rows of immutable
//     matrices, which satisfies this.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T Number](data []T) Vector[T] {
	return Vector[T]{data: data[:len(data):len(data)]}
}

// Gather materializes src[offset], src[offset+stride], ... (n elements)
// into an owned Vector. This is how a matrix column becomes contiguous.
//
// Implementation:
//   - Stage 1: validate n, offset and stride, then bound the last index touched.
//   - Stage 2: copy the strided elements into a fresh buffer.
//
// Errors:
//   - ErrOutOfRange for a negative n/offset or a last index outside src.
//   - ErrBadStride when stride <= 0 and more than one element is requested.
//
// Complexity:
//   - Time O(n), Space O(n).
func Gather[T Number](src []T, offset, stride, n int) (Vector[T], error) {
	if n < 0 || offset < 0 {
		return Vector[T]{}, vectorErrorf(opGather, ErrOutOfRange)
	}
	if n == 0 {
		return Vector[T]{data: []T{}}, nil
	}
	if n > 1 && stride <= 0 {
		return Vector[T]{}, vectorErrorf(opGather, ErrBadStride)
	}
	// the last index read is offset + (n-1)*stride; bound it by division so
	// the product cannot wrap
	if offset >= len(src) || (n > 1 && stride > (len(src)-1-offset)/(n-1)) {
		return Vector[T]{}, vectorErrorf(opGather,
			fmt.Errorf("offset %d, stride %d, n %d over length %d: %w", offset, stride, n, len(src), ErrOutOfRange))
	}

	out := make([]T, n)
	for i, k := 0, offset; i < n; i, k = i+1, k+stride {
		out[i] = src[k]
	}

	return Vector[T]{data: out}, nil
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns the i-th element or ErrOutOfRange.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, vectorErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrOutOfRange))
	}

	return v.data[i], nil
}

// Values returns a copy of the elements.
func (v Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Sum accumulates all elements left to right starting from zero.
func (v Vector[T]) Sum() T {
	var acc T
	for _, x := range v.data {
		acc += x
	}

	return acc
}

// String renders the vector as "[x0 x1 ...]".
func (v Vector[T]) String() string {
	return fmt.Sprint(v.data)
}

// Add returns the element-wise sum a+b as a new owned Vector.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: Time O(n), Space O(n).
func Add[T Number](a, b Vector[T]) (Vector[T], error) {
	if len(a.data) != len(b.data) {
		return Vector[T]{}, vectorErrorf(opAdd, ErrDimensionMismatch)
	}
	out := make([]T, len(a.data))
	for i := range a.data {
		out[i] = a.data[i] + b.data[i]
	}

	return Vector[T]{data: out}, nil
}

// Mul returns the element-wise product a∘b as a new owned Vector.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: Time O(n), Space O(n).
func Mul[T Number](a, b Vector[T]) (Vector[T], error) {
	if len(a.data) != len(b.data) {
		return Vector[T]{}, vectorErrorf(opMul, ErrDimensionMismatch)
	}
	out := make([]T, len(a.data))
	for i := range a.data {
		out[i] = a.data[i] * b.data[i]
	}

	return Vector[T]{data: out}, nil
}
