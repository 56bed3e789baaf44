// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagloss/dfs"
	"github.com/katalvlaran/dagloss/matrix"
)

func TestProjectToDAG_AlreadyAcyclic(t *testing.T) {
	m := edges(t, 3, 0.4, [2]int{0, 1}, [2]int{1, 2})
	out, thr, err := dfs.ProjectToDAG(m)
	require.NoError(t, err)
	assert.Equal(t, 0.0, thr)
	assert.Equal(t, m.Values(), out.Values())
}

func TestProjectToDAG_CutsWeakestCycleEdge(t *testing.T) {
	m, err := matrix.NewDenseRows([][]float64{
		{0, 0.9, 0},
		{0, 0, -0.7},
		{0.2, 0, 0},
	})
	require.NoError(t, err)
	before := m.Values()

	out, thr, err := dfs.ProjectToDAG(m)
	require.NoError(t, err)
	assert.Equal(t, 0.2, thr)
	assert.Equal(t, []float64{0, 0.9, 0, 0, 0, -0.7, 0, 0, 0}, out.Values())
	assert.Equal(t, before, m.Values())

	ok, err := dfs.IsDAG(out)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProjectToDAG_SelfLoopAndBaseThreshold(t *testing.T) {
	m, err := matrix.NewDenseRows([][]float64{
		{0.5, 0.05},
		{0.3, 0},
	})
	require.NoError(t, err)

	// 0.05 is below the base cut-off, so only the self-loop at 0.5 matters.
	out, thr, err := dfs.ProjectToDAG(m, dfs.WithThreshold(0.1))
	require.NoError(t, err)
	assert.Equal(t, 0.5, thr)
	assert.Equal(t, []float64{0, 0, 0, 0}, out.Values())
}

func TestProjectToDAG_Errors(t *testing.T) {
	_, _, err := dfs.ProjectToDAG(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
