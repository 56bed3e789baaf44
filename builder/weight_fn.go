// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// weight_fn.go - edge weight generators.
//
// Contract:
//   - Constructors write whatever the function returns, zero included.
//   - With a nil rng every stochastic generator falls back to DefaultEdgeWeight,
//     so unseeded fixtures stay deterministic.

package builder

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultEdgeWeight is the weight used when no generator is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics on a non-finite value.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// SignedUniformWeightFn draws |w| ~ U[lo, hi] with a random sign, the usual
// linear-SEM weight prior (e.g. lo=0.5, hi=2). Requires 0 <= lo <= hi.
func SignedUniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo || math.IsInf(hi, 0) {
		panic(fmt.Sprintf("SignedUniformWeightFn: require 0 ≤ lo ≤ hi < Inf, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		mag := lo
		if hi > lo {
			mag = lo + rng.Float64()*(hi-lo)
		}
		if rng.IntN(2) == 0 {
			return -mag
		}

		return mag
	}
}

// NormalWeightFn draws w ~ N(mean, stddev²). Panics on stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if !(stddev >= 0) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if stddev == 0 {
			return mean
		}

		return distuv.Normal{Mu: mean, Sigma: stddev, Src: rng}.Rand()
	}
}

// WithConstWeight writes the same weight on every edge.
func WithConstWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithWeightRange draws edge weights with |w| ∈ [lo, hi] and a random sign.
func WithWeightRange(lo, hi float64) BuilderOption {
	return WithWeightFn(SignedUniformWeightFn(lo, hi))
}

// WithNormalWeight draws edge weights from N(mean, stddev²).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
