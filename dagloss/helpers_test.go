// SPDX-License-Identifier: MIT

package dagloss_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/dagloss/matrix"
)

// fdTol bounds central-difference error for the O(1) fixtures below.
const fdTol = 1e-5

func newRNG() *rand.Rand { return rand.New(rand.NewPCG(7, 42)) }

// offZero draws from ±[0.1, 0.5], away from the L1 kink at 0.
func offZero(rng *rand.Rand) float64 {
	v := 0.1 + 0.4*rng.Float64()
	if rng.IntN(2) == 0 {
		return -v
	}

	return v
}

func randDense(t *testing.T, rng *rand.Rand, rows, cols int) *matrix.Dense {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = offZero(rng)
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)

	return m
}

func randBatch(t *testing.T, rng *rand.Rand, n, d int) *matrix.Batch {
	t.Helper()

	return batchFromFlat(t, n, d, randFlat(rng, n*d*d))
}

func randFlat(rng *rand.Rand, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = offZero(rng)
	}

	return out
}

func batchFromFlat(t testing.TB, n, d int, flat []float64) *matrix.Batch {
	t.Helper()
	items := make([]matrix.Matrix, n)
	for k := range items {
		m, err := matrix.NewDenseFrom(d, d, flat[k*d*d:(k+1)*d*d])
		require.NoError(t, err)
		items[k] = m
	}
	b, err := matrix.NewBatchFrom(items...)
	require.NoError(t, err)

	return b
}

func denseFromFlat(t testing.TB, rows, cols int, flat []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, flat)
	require.NoError(t, err)

	return m
}

// numGrad is the central-difference gradient of f at x.
func numGrad(f func([]float64) float64, x []float64) []float64 {
	return fd.Gradient(nil, f, x, &fd.Settings{Formula: fd.Central})
}

func requireSliceClose(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], tol, "index %d", i)
	}
}

// upperTriangular returns a strictly upper-triangular d×d matrix (a DAG).
func upperTriangular(t *testing.T, rng *rand.Rand, d int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(d, d)
	require.NoError(t, err)
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			require.NoError(t, m.Set(i, j, offZero(rng)))
		}
	}

	return m
}

// MustAt reads m[i,j] and fails the test on error.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
