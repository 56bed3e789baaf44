package dfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dagloss/matrix"
)

// adjacency is the out-neighbor list view of a thresholded weight matrix.
// out[i] lists every j with |W[i,j]| > threshold, ascending.
type adjacency struct {
	out [][]int
}

// newAdjacency validates w (non-nil, square, finite) and extracts its edges.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf.
// Complexity: O(d²).
func newAdjacency(w matrix.Matrix, threshold float64) (*adjacency, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}
	d := w.Rows()
	adj := &adjacency{out: make([][]int, d)}
	var v float64
	var err error
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			if v, err = w.At(i, j); err != nil {
				return nil, fmt.Errorf("dfs: %w", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("dfs: W[%d,%d]=%v: %w", i, j, v, matrix.ErrNaNInf)
			}
			if math.Abs(v) > threshold {
				adj.out[i] = append(adj.out[i], j)
			}
		}
	}

	return adj, nil
}

// order returns the vertex count.
func (a *adjacency) order() int { return len(a.out) }
