// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// impl_random_dag.go - implementation of RandomDAG(p) constructor.
//
// Canonical model:
//   - Draw a causal order π = cfg.rng.Perm(d).
//   - For every pair a<b of positions, include π[a]→π[b] with probability p
//     (Erdős–Rényi over the order). The result is a DAG for every draw.
//
// Contract:
//   - d ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); the order is always random.
//
// Complexity:
//   - Time: O(d²) Bernoulli trials. Space: O(d) for the permutation.
//
// Determinism:
//   - Stable trial order: a asc, b asc. Weights drawn right after each accepted trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dagloss/matrix"
)

// RandomDAG returns a Constructor that samples a random DAG with independent
// edge probability p.
func RandomDAG(p float64) Constructor {
	return func(w *matrix.Dense, cfg builderConfig) error {
		d := w.Rows()
		if err := validateMin(MethodRandomDAG, d, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomDAG, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomDAG, ErrNeedRandSource)
		}

		order := cfg.rng.Perm(d)
		for a := 0; a < d; a++ {
			for b := a + 1; b < d; b++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := setEdge(MethodRandomDAG, w, cfg, order[a], order[b]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
