// SPDX-License-Identifier: MIT

// Package schedule implements the augmented-Lagrangian schedule that drives
// the NOTEARS outer loop: dual ascent on alpha and geometric growth of rho.
//
// The loss functions in package dagloss take alpha and rho as read-only
// inputs. A Schedule owns them between outer iterations:
//
//	s := schedule.New()
//	for {
//		alpha, rho := s.Params()
//		// ... minimize the objective for fixed alpha, rho; measure h(W) ...
//		step := s.Update(h)
//		if step.Converged {
//			break
//		}
//	}
//
// Update rule for an observed h (hPrev starts at +Inf):
//
//	if h > c·hPrev and rho < rhoMax: rho = min(rho·m, rhoMax)
//	alpha += rho·h
//	hPrev  = h
//
// A Schedule is safe for concurrent use.
package schedule
