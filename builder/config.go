// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn     (constant 1)
//   • noiseSigma  = 1.0                 (unit-variance SEM noise)
//
// AI-Hints:
//   • Set WithSeed for reproducible RandomDAG fixtures, random weights and SEM samples.
//   • WithNoise(0) makes SampleLinearSEM a deterministic function of its roots.

package builder

import "math/rand/v2"

// builderConfig aggregates all knobs used by constructors and samplers.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Standard deviation of additive Gaussian SEM noise.
	noiseSigma float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultNoiseSigma = 1.0
	// seedStream is the fixed second PCG word; WithSeed varies the first.
	seedStream uint64 = 0x9e3779b97f4a7c15
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		weightFn:   DefaultWeightFn,
		noiseSigma: defaultNoiseSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
