// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagloss/matrix"
)

func TestAddSub_FastAndFallback_Match(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{10, 20, 30, 40})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	sumSlow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Values())
	assert.Equal(t, sum.Values(), sumSlow.Values())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27, 36}, diff.Values())
}

func TestAdd_ShapeAndNil(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 1, 2, []float64{1, 2})

	_, err := matrix.Add(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	_, err = matrix.Sub(typedNil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_FastAndFallback_Match(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	assert.Equal(t, []float64{58, 64, 139, 154}, fast.Values())
	assert.Equal(t, fast.Values(), slow.Values())

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_ZeroTimesInfIsNaN(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 1, 1, []float64{0})
	b, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, math.Inf(1)))

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(MustAt(t, p, 0, 0)))
}

func TestTransposeScaleHadamard(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Values())
	trSlow, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	assert.Equal(t, tr.Values(), trSlow.Values())

	sc, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -4, -6, -8, -10, -12}, sc.Values())

	sq, err := matrix.Hadamard(a, hide{a})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 9, 16, 25, 36}, sq.Values())

	_, err = matrix.Hadamard(a, tr)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVecAndVecMat(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	y, err := matrix.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	z, err := matrix.VecMat([]float64{1, 2}, m)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 12, 15}, z)

	zSlow, err := matrix.VecMat([]float64{1, 2}, hide{m})
	require.NoError(t, err)
	assert.Equal(t, z, zSlow)

	_, err = matrix.VecMat([]float64{1, 2, 3}, m)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestOuter(t *testing.T) {
	t.Parallel()
	o, err := matrix.Outer([]float64{1, 2}, []float64{3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5, 6, 8, 10}, o.Values())

	_, err = matrix.Outer(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Outer([]float64{}, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_SetRow(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(1, []float64{7, 8}))
	assert.Equal(t, []float64{0, 0, 7, 8}, m.Values())
	assert.ErrorIs(t, m.SetRow(0, []float64{1}), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, m.SetRow(2, []float64{1, 2}), matrix.ErrOutOfRange)
}
