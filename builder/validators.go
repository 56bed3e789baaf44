// SPDX-License-Identifier: MIT

package builder

import "fmt"

// validateMin enforces got >= min with ErrTooFewVertices.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: d=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
