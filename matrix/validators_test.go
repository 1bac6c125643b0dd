// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.NoError(t, matrix.ValidateNotNil(matrix.MustNew([]int{1}, 1, 1)))
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	a := matrix.MustNew(seq(6), 2, 3)
	b := matrix.MustNew(seq(6), 3, 2)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.NoError(t, matrix.ValidateMulCompatible(b, a))

	err := matrix.ValidateMulCompatible(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "a is 2x3, b is 2x3")

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}

// TestValidateMulCompatible_ProductOverflow rejects products whose cell count
// does not fit in an int, even when both operands are valid empty matrices.
func TestValidateMulCompatible_ProductOverflow(t *testing.T) {
	tall := matrix.MustNew([]int{}, math.MaxInt/2+1, 0)
	wide := matrix.MustNew([]int{}, 0, 2)

	err := matrix.ValidateMulCompatible(tall, wide)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Multiply(tall, wide)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
