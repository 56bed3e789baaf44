// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// impl_complete.go - Complete() constructor: the full DAG in index order.
//
// Contract:
//   - d ≥ 1 (else ErrTooFewVertices).
//   - Emits every i→j with i<j, i ascending then j ascending.
//   - The result is strictly upper triangular, hence acyclic with h(W) = 0.
//
// Complexity: O(d²) time, O(1) extra space.

package builder

import "github.com/katalvlaran/dagloss/matrix"

// Complete returns a Constructor for the transitive tournament on d nodes.
func Complete() Constructor {
	return func(w *matrix.Dense, cfg builderConfig) error {
		d := w.Rows()
		if err := validateMin(MethodComplete, d, MinCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < d; i++ {
			for j := i + 1; j < d; j++ {
				if err := setEdge(MethodComplete, w, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
