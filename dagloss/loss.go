// SPDX-License-Identifier: MIT

package dagloss

import "github.com/katalvlaran/dagloss/matrix"

// Loss is the result of a batched loss term.
//
// GradW has the shape of the W batch (N×d×d). GradX has the shape of X (N×d)
// and is nil for terms that do not depend on X. Both are freshly allocated
// and share no memory with the inputs.
type Loss struct {
	Value float64
	GradW *matrix.Batch
	GradX *matrix.Dense
}

// SingleLoss is the result of a loss term over one d×d matrix.
type SingleLoss struct {
	Value float64
	GradW *matrix.Dense
}
