// SPDX-License-Identifier: MIT

package schedule

import (
	"errors"
	"math"
)

// Default values for the schedule configuration.
const (
	DefaultAlpha          = 0.0
	DefaultRho            = 1.0
	DefaultRhoMultiplier  = 10.0
	DefaultProgressRatio  = 0.25
	DefaultRhoMax         = 1e16
	DefaultTolerance      = 1e-8
	minRhoMultiplierBound = 1.0
)

// Sentinel errors used as panic values by option constructors.
var (
	ErrInvalidRho           = errors.New("schedule: rho must be positive and finite")
	ErrInvalidRhoMultiplier = errors.New("schedule: rho multiplier must be > 1")
	ErrInvalidProgressRatio = errors.New("schedule: progress ratio must be in (0,1)")
	ErrInvalidTolerance     = errors.New("schedule: tolerance must be non-negative")
	ErrInvalidAlpha         = errors.New("schedule: alpha must be finite")
)

// Option customizes a Schedule. Options validate eagerly and panic on
// programmer error.
type Option func(*config)

type config struct {
	alpha, rho, mult, ratio, rhoMax, tol float64
}

func defaultConfig() config {
	return config{
		alpha:  DefaultAlpha,
		rho:    DefaultRho,
		mult:   DefaultRhoMultiplier,
		ratio:  DefaultProgressRatio,
		rhoMax: DefaultRhoMax,
		tol:    DefaultTolerance,
	}
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WithAlpha sets the initial Lagrange multiplier.
func WithAlpha(a float64) Option {
	if !isFinite(a) {
		panic(ErrInvalidAlpha)
	}

	return func(c *config) { c.alpha = a }
}

// WithRho sets the initial penalty weight (> 0).
func WithRho(r float64) Option {
	if !(r > 0) || !isFinite(r) {
		panic(ErrInvalidRho)
	}

	return func(c *config) { c.rho = r }
}

// WithRhoMultiplier sets the growth factor applied when progress stalls (> 1).
func WithRhoMultiplier(m float64) Option {
	if !(m > minRhoMultiplierBound) || !isFinite(m) {
		panic(ErrInvalidRhoMultiplier)
	}

	return func(c *config) { c.mult = m }
}

// WithProgressRatio sets c: rho grows when h > c·hPrev. c must be in (0,1).
func WithProgressRatio(ratio float64) Option {
	if !(ratio > 0 && ratio < 1) {
		panic(ErrInvalidProgressRatio)
	}

	return func(c *config) { c.ratio = ratio }
}

// WithRhoMax caps rho (> 0). +Inf disables the cap.
func WithRhoMax(rhoMax float64) Option {
	if !(rhoMax > 0) {
		panic(ErrInvalidRho)
	}

	return func(c *config) { c.rhoMax = rhoMax }
}

// WithTolerance sets the convergence bound on h (>= 0).
func WithTolerance(tol float64) Option {
	if !(tol >= 0) {
		panic(ErrInvalidTolerance)
	}

	return func(c *config) { c.tol = tol }
}
