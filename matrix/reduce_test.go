// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagloss/matrix"
)

func TestTrace(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 3, 3, []float64{1, 9, 9, 9, 2, 9, 9, 9, 3})
	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	assert.Equal(t, 6.0, tr)

	trSlow, err := matrix.Trace(hide{m})
	require.NoError(t, err)
	assert.Equal(t, tr, trSlow)

	_, err = matrix.Trace(NewFilledDense(t, 1, 2, []float64{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSumSumAbsSquaredNorm(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 3, []float64{1, -2, 3, -4, 5, -6})

	s, err := matrix.Sum(m)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, s, 1e-12)

	l1, err := matrix.SumAbs(hide{m})
	require.NoError(t, err)
	assert.Equal(t, 21.0, l1)

	fro, err := matrix.SquaredNorm(m)
	require.NoError(t, err)
	assert.InDelta(t, 91.0, fro, 1e-12)

	_, err = matrix.SquaredNorm(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSign(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(1, 4, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	for j, v := range []float64{-3, 0, 0.5, math.NaN()} {
		require.NoError(t, m.Set(0, j, v))
	}
	s, err := matrix.Sign(m)
	require.NoError(t, err)
	vals := s.Values()
	assert.Equal(t, []float64{-1, 0, 1}, vals[:3])
	assert.True(t, math.IsNaN(vals[3]))
}

func TestAllClose(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1, 2 + 1e-10})

	ok, err := matrix.AllClose(a, b, 1e-9, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, NewFilledDense(t, 2, 1, []float64{1, 2}), 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
