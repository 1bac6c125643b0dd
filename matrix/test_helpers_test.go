// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and a sequential reference kernel.
//   • Keep all data finite so float comparisons stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/vector"
	"github.com/stretchr/testify/require"
)

// naiveMultiply is the sequential triple loop (i→j→k) used as ground truth.
// The k-loop order matches vector.Dot, so float results are bit-identical.
func naiveMultiply[T vector.Number](t testing.TB, a, b *matrix.Matrix[T]) *matrix.Matrix[T] {
	t.Helper()
	require.Equal(t, a.Cols(), b.Rows(), "naiveMultiply: incompatible operands")

	ad, bd := a.Data(), b.Data()
	r, n, c := a.Rows(), a.Cols(), b.Cols()
	out := make([]T, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += ad[i*n+k] * bd[k*c+j]
			}
			out[i*c+j] = sum
		}
	}

	return mustMatrix(t, out, r, c)
}

// mustMatrix builds a matrix or fails the test.
func mustMatrix[T vector.Number](t testing.TB, data []T, rows, cols int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(data, rows, cols)
	require.NoError(t, err)

	return m
}

// randInts fills an r×c int matrix from a seeded source with values in [-9, 9].
func randInts(t testing.TB, rng *rand.Rand, rows, cols int) *matrix.Matrix[int] {
	t.Helper()
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = rng.Intn(19) - 9
	}

	return mustMatrix(t, data, rows, cols)
}

// randFloats fills an r×c float64 matrix from a seeded source in [-1, 1).
func randFloats(t testing.TB, rng *rand.Rand, rows, cols int) *matrix.Matrix[float64] {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return mustMatrix(t, data, rows, cols)
}

// seq returns 1..n.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}
