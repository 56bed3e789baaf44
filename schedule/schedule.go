// SPDX-License-Identifier: MIT

package schedule

import (
	"math"
	"sync"
)

// Step records one Update.
type Step struct {
	H         float64 // observed acyclicity
	Alpha     float64 // alpha after the update
	Rho       float64 // rho after the update
	RhoRaised bool    // rho grew on this step
	Converged bool    // H <= tolerance
}

// Schedule holds alpha, rho and the previous h between outer iterations.
type Schedule struct {
	mu    sync.Mutex
	cfg   config
	alpha float64
	rho   float64
	hPrev float64
	steps int
}

// New builds a Schedule. Initial rho is clamped to the cap.
func New(opts ...Option) *Schedule {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Schedule{
		cfg:   cfg,
		alpha: cfg.alpha,
		rho:   math.Min(cfg.rho, cfg.rhoMax),
		hPrev: math.Inf(1),
	}
}

// Params returns the current alpha and rho.
func (s *Schedule) Params() (alpha, rho float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alpha, s.rho
}

// Update applies the dual-ascent rule for the observed h and returns the
// resulting Step. A NaN h is ignored: the parameters stay as they were and
// the Step reports them.
func (s *Schedule) Update(h float64) Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	if math.IsNaN(h) {
		return Step{H: h, Alpha: s.alpha, Rho: s.rho}
	}

	raised := false
	if h > s.cfg.ratio*s.hPrev && s.rho < s.cfg.rhoMax {
		s.rho = math.Min(s.rho*s.cfg.mult, s.cfg.rhoMax)
		raised = true
	}
	s.alpha += s.rho * h
	s.hPrev = h
	s.steps++

	return Step{
		H:         h,
		Alpha:     s.alpha,
		Rho:       s.rho,
		RhoRaised: raised,
		Converged: h <= s.cfg.tol,
	}
}

// Converged reports whether h satisfies the tolerance.
func (s *Schedule) Converged(h float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return h <= s.cfg.tol
}

// Steps returns the number of applied updates.
func (s *Schedule) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.steps
}
