// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagloss/matrix"
)

func TestExp_ZeroIsIdentity(t *testing.T) {
	t.Parallel()
	z, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	e, err := matrix.Exp(z)
	require.NoError(t, err)
	requireClose(t, NewFilledDense(t, 3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), e, 1e-14)
}

func TestExp_Diagonal(t *testing.T) {
	t.Parallel()
	d := NewFilledDense(t, 2, 2, []float64{1, 0, 0, -2})
	e, err := matrix.Exp(hide{d})
	require.NoError(t, err)
	requireClose(t, NewFilledDense(t, 2, 2, []float64{math.E, 0, 0, math.Exp(-2)}), e, 1e-12)
}

func TestExp_Nilpotent(t *testing.T) {
	t.Parallel()
	// N² = 0 ⇒ exp(N) = I + N exactly.
	n := NewFilledDense(t, 2, 2, []float64{0, 3, 0, 0})
	e, err := matrix.Exp(n)
	require.NoError(t, err)
	requireClose(t, NewFilledDense(t, 2, 2, []float64{1, 3, 0, 1}), e, 1e-12)
}

func TestExp_TwoCycleTrace(t *testing.T) {
	t.Parallel()
	// [[0,a],[a,0]] ⇒ exp has cosh(a) on the diagonal.
	a := 0.7
	m := NewFilledDense(t, 2, 2, []float64{0, a, a, 0})
	e, err := matrix.Exp(m)
	require.NoError(t, err)
	tr, err := matrix.Trace(e)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Cosh(a), tr, 1e-12)
}

func TestExp_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{0.1, 0.2, 0.3, 0.4})
	before := m.Values()
	_, err := matrix.Exp(m)
	require.NoError(t, err)
	assert.Equal(t, before, m.Values())
}

func TestExp_ShapeErrors(t *testing.T) {
	t.Parallel()
	_, err := matrix.Exp(NewFilledDense(t, 2, 3, make([]float64, 6)))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Exp(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestExp_NonFinitePropagates(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(2, 2, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, math.NaN()))
	e, err := matrix.Exp(m)
	require.NoError(t, err)
	for _, v := range e.Values() {
		assert.True(t, math.IsNaN(v))
	}
}
