// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// options.go - functional options resolved into builderConfig.
//
// Policy:
//   - Invalid option values are programmer errors and panic at construction.
//   - Later options override earlier ones.

package builder

import "math/rand/v2"

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand installs a caller-owned RNG. Panics on nil.
// The RNG is not safe for concurrent use; do not share it across goroutines.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh PCG stream seeded by seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(uint64(seed), seedStream))
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithNoise sets the SEM noise standard deviation. Panics on sigma < 0.
func WithNoise(sigma float64) BuilderOption {
	if !(sigma >= 0) {
		panic("builder: WithNoise(sigma<0)")
	}

	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}
