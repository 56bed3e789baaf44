// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildAdjacency(d, bopts, cons...). Allocates W, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices/samples.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors to overlay structures; later writes win on shared entries.
//   - Use WithSeed(...) to freeze stochastic paths (RandomDAG, random weights, SEM noise).

package builder

import (
	"fmt"

	"github.com/katalvlaran/dagloss/matrix"
)

// Constructor writes edges into the d×d adjacency w using the resolved
// builderConfig. Edge i→j is stored at w[i,j]. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(w *matrix.Dense, cfg builderConfig) error

// BuildAdjacency allocates a zero d×d matrix, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildAdjacency: %w" and returned
// immediately.
//
// Complexity:
//   - Allocation O(d²); applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrTooFewVertices for d < 1; constructor errors via %w.
func BuildAdjacency(d int, bopts []BuilderOption, cons ...Constructor) (*matrix.Dense, error) {
	if err := validateMin(MethodBuild, d, 1); err != nil {
		return nil, err
	}
	w, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodBuild, ErrConstructFailed, err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		if err = fn(w, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
	}

	return w, nil
}

// setEdge writes the next weight for i→j.
func setEdge(method string, w *matrix.Dense, cfg builderConfig, i, j int) error {
	if err := w.Set(i, j, cfg.weightFn(cfg.rng)); err != nil {
		return fmt.Errorf("%s: edge %d→%d: %w: %w", method, i, j, ErrConstructFailed, err)
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Emit edges in a stable, documented order (weights are drawn in that order).
//   - Return only sentinel errors; NEVER panic at runtime.

// Chain builds the path 0→1→…→d-1 (d ≥ 2). Acyclic.
// Complexity: O(d) edges.
//func Chain() Constructor

// Cycle builds 0→1→…→d-1→0 (d ≥ 2). One directed cycle of length d.
// Complexity: O(d) edges.
//func Cycle() Constructor

// Star builds the fan-out 0→i for every i ≥ 1 (d ≥ 2). Acyclic.
// Complexity: O(d) edges.
//func Star() Constructor

// Complete builds every edge i→j with i<j (d ≥ 1): the densest DAG in index order.
// Complexity: O(d²) edges.
//func Complete() Constructor

// RandomDAG samples each pair of a random causal order with probability p.
// Requires cfg.rng != nil for 0 < p < 1 and always for the order shuffle.
// Complexity: O(d²) Bernoulli trials.
//func RandomDAG(p float64) Constructor

// =============================================================================
// Data generation - impl in sem.go
// =============================================================================

// SampleLinearSEM draws n samples x = x·W + ε in ancestral order.
//func SampleLinearSEM(w matrix.Matrix, n int, opts ...BuilderOption) (*matrix.Dense, error)
