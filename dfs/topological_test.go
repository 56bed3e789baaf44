package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagloss/dfs"
	"github.com/katalvlaran/dagloss/matrix"
)

// TestTopo_NilMatrix verifies that a nil adjacency returns ErrNilMatrix.
func TestTopo_NilMatrix(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTopo_NonSquare rejects rectangular adjacency.
func TestTopo_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = dfs.TopologicalSort(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestTopo_NoEdges keeps index order when W is zero.
func TestTopo_NoEdges(t *testing.T) {
	order, err := dfs.TopologicalSort(edges(t, 3, 1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, order)
}

// TestTopo_SimpleChain verifies linear chain 0→1→2 yields [0,1,2].
func TestTopo_SimpleChain(t *testing.T) {
	order, err := dfs.TopologicalSort(edges(t, 3, 0.5, [2]int{0, 1}, [2]int{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestTopo_ReversedIndices handles edges that point to lower indices.
func TestTopo_ReversedIndices(t *testing.T) {
	m := edges(t, 4, -0.8, [2]int{3, 1}, [2]int{1, 0}, [2]int{2, 0})
	order, err := dfs.TopologicalSort(m)
	require.NoError(t, err)
	requireTopological(t, m, order, 0)
}

// TestTopo_CycleDetected ensures a 3-cycle is rejected.
func TestTopo_CycleDetected(t *testing.T) {
	m := edges(t, 3, 1, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	_, err := dfs.TopologicalSort(m)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_SelfLoop counts a diagonal entry as a cycle.
func TestTopo_SelfLoop(t *testing.T) {
	_, err := dfs.TopologicalSort(edges(t, 2, 0.1, [2]int{1, 1}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_Threshold drops weak edges before sorting.
func TestTopo_Threshold(t *testing.T) {
	m := edges(t, 2, 0.9, [2]int{0, 1})
	require.NoError(t, m.Set(1, 0, 0.05))

	_, err := dfs.TopologicalSort(m)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	order, err := dfs.TopologicalSort(m, dfs.WithThreshold(0.1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, order)

	assert.Panics(t, func() { dfs.WithThreshold(-1) })
}

// TestTopo_NaNRejected refuses to guess an edge for a NaN weight.
func TestTopo_NaNRejected(t *testing.T) {
	m, err := matrix.NewDenseFrom(1, 1, []float64{0}, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, nan()))
	_, err = dfs.TopologicalSort(m)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestTopo_Cancel honors a canceled context.
func TestTopo_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(edges(t, 3, 1, [2]int{0, 1}), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestIsDAG agrees with TopologicalSort.
func TestIsDAG(t *testing.T) {
	ok, err := dfs.IsDAG(edges(t, 3, 1, [2]int{0, 1}, [2]int{0, 2}))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dfs.IsDAG(edges(t, 2, 1, [2]int{0, 1}, [2]int{1, 0}))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = dfs.IsDAG(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
