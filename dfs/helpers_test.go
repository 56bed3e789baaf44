package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagloss/matrix"
)

// edges builds a d×d adjacency with weight w for each listed pair.
func edges(t testing.TB, d int, w float64, pairs ...[2]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(d, d)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, m.Set(p[0], p[1], w))
	}

	return m
}

// position returns index of v in order or -1 if not found.
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// requireTopological asserts u precedes v for every edge of m.
func requireTopological(t *testing.T, m matrix.Matrix, order []int, threshold float64) {
	t.Helper()
	require.Len(t, order, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if v > threshold || -v > threshold {
				require.Less(t, position(order, i), position(order, j), "edge %d→%d", i, j)
			}
		}
	}
}
