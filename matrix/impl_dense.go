// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Stay immutable after construction so a matrix can be read by any number
//     of workers without locks.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At/Row: O(1); Col: O(r) gather; Data/Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/concurrency/vector"
)

// ---------- error context tags ----------

const (
	ctxNew = "New"
	ctxAt  = "At"
	ctxRow = "Row"
	ctxCol = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "{"
	_fmtClose    = "}"
	_fmtValueSep = " "
	_fmtRowSep   = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense row-major matrix of numeric elements.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//
// A Matrix is never mutated after construction.
type Matrix[T vector.Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer   = (*Matrix[int])(nil)
	_ fmt.GoStringer = (*Matrix[float64])(nil)
)

// New wraps a copy of data as a rows×cols matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0, cols>=0 and len(data)==rows*cols.
//   - Stage 2: copy data into a private buffer.
//
// Errors:
//   - ErrBadShape (negative dimension), ErrDimensionMismatch (buffer length).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Zero-sized matrices (0×n, n×0) are legal; they multiply to empty results.
func New[T vector.Number](data []T, rows, cols int) (*Matrix[T], error) {
	if err := validateShape(rows, cols, len(data)); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// MustNew is New for literals known to be well-formed. It panics on error.
func MustNew[T vector.Number](data []T, rows, cols int) *Matrix[T] {
	m, err := New(data, rows, cols)
	if err != nil {
		panic(err)
	}

	return m
}

// fromBuffer adopts buf without copying. Only the dispatcher uses it, for a
// buffer it has just filled and never touches again.
func fromBuffer[T vector.Number](buf []T, rows, cols int) *Matrix[T] {
	return &Matrix[T]{r: rows, c: cols, data: buf}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *Matrix[T]) Len() int { return len(m.data) }

// At returns element (row, col).
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Data returns a copy of the row-major buffer.
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns row i as a zero-copy vector view.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) (vector.Vector[T], error) {
	if i < 0 || i >= m.r {
		return vector.Vector[T]{}, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.row(i), nil
}

// row is Row without the bounds check.
func (m *Matrix[T]) row(i int) vector.Vector[T] {
	return vector.New(m.data[i*m.c : (i+1)*m.c])
}

// Col returns column j as an owned vector gathered with stride Cols().
// Errors: ErrOutOfRange.
// Complexity: Time O(r), Space O(r).
func (m *Matrix[T]) Col(j int) (vector.Vector[T], error) {
	if j < 0 || j >= m.c {
		return vector.Vector[T]{}, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return m.col(j)
}

// col is Col without the bounds check on j.
func (m *Matrix[T]) col(j int) (vector.Vector[T], error) {
	return vector.Gather(m.data, j, m.c, m.r)
}

// Equal reports whether m and o have the same shape and elements.
// Two nil matrices are equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix as {v00 v01, v10 v11}: values in a row are
// separated by one space, rows by ", ", and the whole is wrapped in braces.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values with %v into a strings.Builder.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtValueSep)
			}
			fmt.Fprintf(&b, "%v", m.data[base+j])
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// GoString renders Matrix(row=R, col=C, {...}); used by the %#v verb.
func (m *Matrix[T]) GoString() string {
	return fmt.Sprintf("Matrix(row=%d, col=%d, %s)", m.r, m.c, m.String())
}
