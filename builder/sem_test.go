// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/dagloss/builder"
	"github.com/katalvlaran/dagloss/dfs"
	"github.com/katalvlaran/dagloss/matrix"
)

func TestSampleLinearSEM_ChainPropagates(t *testing.T) {
	w, err := builder.BuildAdjacency(3, []builder.BuilderOption{builder.WithConstWeight(2)}, builder.Chain())
	require.NoError(t, err)

	const n, sigma = 5, 0.7
	x, err := builder.SampleLinearSEM(w, n,
		builder.WithRand(rand.New(rand.NewPCG(9, 9))), builder.WithNoise(sigma))
	require.NoError(t, err)

	// Replay the same stream: order is 0,1,2 for the chain.
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.New(rand.NewPCG(9, 9))}
	for k := 0; k < n; k++ {
		e0, e1, e2 := noise.Rand(), noise.Rand(), noise.Rand()
		x0 := e0
		x1 := 2*x0 + e1
		x2 := 2*x1 + e2
		row, err := x.RawRow(k)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{x0, x1, x2}, row, 1e-12)
	}
}

func TestSampleLinearSEM_ResidualIsNoise(t *testing.T) {
	// 2→1→0: node 2 is the root, so noise is drawn for 2, then 1, then 0.
	w, err := matrix.NewDenseRows([][]float64{
		{0, 0, 0},
		{-1, 0, 0},
		{0, 3, 0},
	})
	require.NoError(t, err)

	const n = 20
	x, err := builder.SampleLinearSEM(w, n, builder.WithRand(rand.New(rand.NewPCG(4, 2))))
	require.NoError(t, err)

	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.New(rand.NewPCG(4, 2))}
	for k := 0; k < n; k++ {
		e2, e1, e0 := noise.Rand(), noise.Rand(), noise.Rand()
		row, err := x.RawRow(k)
		require.NoError(t, err)
		pred, err := matrix.VecMat(row, w)
		require.NoError(t, err)
		assert.InDelta(t, e0, row[0]-pred[0], 1e-9)
		assert.InDelta(t, e1, row[1]-pred[1], 1e-9)
		assert.InDelta(t, e2, row[2]-pred[2], 1e-9)
	}
}

func TestSampleLinearSEM_Deterministic(t *testing.T) {
	w, err := builder.BuildAdjacency(4, []builder.BuilderOption{builder.WithSeed(1), builder.WithWeightRange(0.5, 1)},
		builder.Complete())
	require.NoError(t, err)

	a, err := builder.SampleLinearSEM(w, 10, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.SampleLinearSEM(w, 10, builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())
}

func TestSampleLinearSEM_ZeroNoiseNeedsNoRNG(t *testing.T) {
	w, err := builder.BuildAdjacency(2, nil, builder.Chain())
	require.NoError(t, err)
	x, err := builder.SampleLinearSEM(w, 3, builder.WithNoise(0))
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 6), x.Values())
}

func TestSampleLinearSEM_Errors(t *testing.T) {
	cyc, err := builder.BuildAdjacency(3, nil, builder.Cycle())
	require.NoError(t, err)
	_, err = builder.SampleLinearSEM(cyc, 4, builder.WithSeed(1))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	chain, err := builder.BuildAdjacency(3, nil, builder.Chain())
	require.NoError(t, err)
	_, err = builder.SampleLinearSEM(chain, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.SampleLinearSEM(chain, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.SampleLinearSEM(nil, 2, builder.WithSeed(1))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
