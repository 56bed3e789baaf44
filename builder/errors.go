// SPDX-License-Identifier: MIT
// Package: dagloss/builder
//
// errors.go - sentinel errors for adjacency fixtures and SEM sampling.
//
// Policy:
//   - Constructors and SampleLinearSEM return these sentinels wrapped with
//     method context via %w; callers branch with errors.Is.
//   - Option constructors panic on programmer error (nil fn, bad ranges).

package builder

import "errors"

// ErrTooFewVertices is returned when d is below a constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when an edge probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic path runs without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed signals a nil constructor or a failed matrix write.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize is returned for a non-positive sample count.
var ErrBadSize = errors.New("builder: invalid size/length")
