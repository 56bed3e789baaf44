// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// sem.go - linear structural equation model sampling.
//
// Model (row-vector convention, matching dagloss):
//
//	x_j = Σ_i x_i·W[i,j] + ε_j,   ε_j ~ N(0, σ²)
//
// Implementation:
//   - Stage 1: validate n ≥ 1 and obtain an ancestral order with
//     dfs.TopologicalSort (any nonzero weight is an edge).
//   - Stage 2: for each sample, visit nodes in that order so every parent is
//     drawn before its children.
//
// Determinism:
//   - Noise is drawn sample-major, then in topological order.
//   - σ = 0 needs no RNG and yields all-zero samples (no exogenous input).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/dagloss/dfs"
	"github.com/katalvlaran/dagloss/matrix"
)

// SampleLinearSEM draws n samples from the linear SEM with weights w.
//
// Errors:
//   - ErrBadSize for n < 1.
//   - ErrNeedRandSource when σ > 0 and neither WithSeed nor WithRand is given.
//   - dfs errors (matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
//     dfs.ErrCycleDetected) for an unusable w.
//
// Complexity: O(d²) for the order, O(n·d²) for sampling.
func SampleLinearSEM(w matrix.Matrix, n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", MethodSEM, n, ErrBadSize)
	}
	order, err := dfs.TopologicalSort(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSEM, err)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.noiseSigma > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required for noise: %w", MethodSEM, ErrNeedRandSource)
	}

	d := w.Rows()
	weights := make([]float64, d*d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			if weights[i*d+j], err = w.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", MethodSEM, err)
			}
		}
	}

	noise := func() float64 { return 0 }
	if cfg.noiseSigma > 0 {
		dist := distuv.Normal{Mu: 0, Sigma: cfg.noiseSigma, Src: cfg.rng}
		noise = dist.Rand
	}

	out, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSEM, err)
	}
	row := make([]float64, d)
	for k := 0; k < n; k++ {
		for _, j := range order {
			v := noise()
			for i := 0; i < d; i++ {
				v += row[i] * weights[i*d+j]
			}
			row[j] = v
		}
		if err = out.SetRow(k, row); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodSEM, err)
		}
		clear(row)
	}

	return out, nil
}
