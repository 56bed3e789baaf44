// SPDX-License-Identifier: MIT

package dagloss

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when a loss input is nil, non-square, empty,
// or disagrees with another input on a shared dimension.
var ErrShapeMismatch = errors.New("dagloss: shape mismatch")

// Operation tags for error wrapping.
const (
	opAcyclicity     = "Acyclicity"
	opPenaltySingle  = "PenaltySingle"
	opPenaltyBatched = "PenaltyBatched"
	opFit            = "Fit"
	opL1             = "L1"
	opObjective      = "Objective"
)

// shapeErrorf tags err with op and ErrShapeMismatch, keeping err matchable.
func shapeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrShapeMismatch, err)
}

// lossErrorf wraps an internal kernel failure with the operation tag.
func lossErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
