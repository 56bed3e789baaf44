// SPDX-License-Identifier: MIT

// Package matrix: numeric policy configuration.
// This file defines:
//   - documented defaults (constants),
//   - DenseOption constructors,
//   - gatherDenseOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	// Kernels writing through the flat buffer are not affected.
	DefaultValidateNaNInf = true

	// DefaultRelTol and DefaultAbsTol are the AllClose tolerances used by
	// callers that do not carry their own numeric policy.
	DefaultRelTol = 1e-9
	DefaultAbsTol = 1e-12
)

// DenseOption configures a Dense at construction time.
type DenseOption func(*denseOptions)

type denseOptions struct {
	validateNaNInf bool
}

// WithValidateNaNInf sets the finite-only policy for Set on the constructed matrix.
func WithValidateNaNInf(on bool) DenseOption {
	return func(o *denseOptions) {
		o.validateNaNInf = on
	}
}

// gatherDenseOptions resolves opts over the documented defaults (last wins).
func gatherDenseOptions(opts ...DenseOption) denseOptions {
	o := denseOptions{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
