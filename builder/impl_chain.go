// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// impl_chain.go - Chain() and Cycle() constructors.
//
// Contract:
//   - d ≥ 2 (else ErrTooFewVertices).
//   - Edges emitted in ascending i: i→i+1, then (Cycle only) d-1→0.
//   - Weights drawn from cfg.weightFn(cfg.rng) in emission order.
//
// Complexity: O(d) time, O(1) extra space.

package builder

import "github.com/katalvlaran/dagloss/matrix"

// Chain returns a Constructor for the path 0→1→…→d-1.
func Chain() Constructor {
	return func(w *matrix.Dense, cfg builderConfig) error {
		d := w.Rows()
		if err := validateMin(MethodChain, d, MinChainNodes); err != nil {
			return err
		}

		return addChain(MethodChain, w, cfg)
	}
}

// Cycle returns a Constructor for the directed ring 0→1→…→d-1→0.
// For d == 2 this is the 2-cycle 0⇄1.
func Cycle() Constructor {
	return func(w *matrix.Dense, cfg builderConfig) error {
		d := w.Rows()
		if err := validateMin(MethodCycle, d, MinCycleNodes); err != nil {
			return err
		}
		if err := addChain(MethodCycle, w, cfg); err != nil {
			return err
		}

		return setEdge(MethodCycle, w, cfg, d-1, 0)
	}
}

func addChain(method string, w *matrix.Dense, cfg builderConfig) error {
	for i := 0; i+1 < w.Rows(); i++ {
		if err := setEdge(method, w, cfg, i, i+1); err != nil {
			return err
		}
	}

	return nil
}
