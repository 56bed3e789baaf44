// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagloss/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom_LengthMismatch(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewDenseFrom_CopiesInput(t *testing.T) {
	t.Parallel()
	vals := []float64{1, 2, 3, 4}
	m := NewFilledDense(t, 2, 2, vals)
	vals[0] = 100
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewDenseRows_Ragged(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDenseRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m, err := matrix.NewDenseRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0))
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 2, 7.5))
	assert.Equal(t, 7.5, MustAt(t, m, 1, 2))
}

func TestDense_SetNumericPolicy(t *testing.T) {
	t.Parallel()
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	assert.True(t, math.IsInf(MustAt(t, loose, 0, 0), 1))
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, cp, 0, 0))
}

func TestDense_RawRowAndString(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	row, err := m.RawRow(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	_, err = m.RawRow(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
