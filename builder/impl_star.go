// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// impl_star.go - Star() constructor: one root driving every other node.
//
// Contract:
//   - d ≥ 2 (else ErrTooFewVertices).
//   - Edges 0→1, 0→2, …, 0→d-1 in ascending order.
//
// Complexity: O(d) time, O(1) extra space.

package builder

import "github.com/katalvlaran/dagloss/matrix"

// Star returns a Constructor for the fan-out from node 0.
func Star() Constructor {
	return func(w *matrix.Dense, cfg builderConfig) error {
		d := w.Rows()
		if err := validateMin(MethodStar, d, MinStarNodes); err != nil {
			return err
		}
		for j := 1; j < d; j++ {
			if err := setEdge(MethodStar, w, cfg, 0, j); err != nil {
				return err
			}
		}

		return nil
	}
}
