// SPDX-License-Identifier: MIT

// Acyclicity penalty: h(W) = tr(exp(W∘W)) − d and the augmented-Lagrangian
// penalty α·h + ½·ρ·h² built on it.
//
// Complexity quicksheet (d = nodes, N = batch size):
//   - Acyclicity / PenaltySingle: O(d³) for the Padé exponential.
//   - PenaltyBatched: O(N·d³) work split across the pool, O(N·d²) space.

package dagloss

import (
	"fmt"

	"github.com/katalvlaran/dagloss/matrix"
)

// Acyclicity returns h(W) = tr(exp(W∘W)) − d and its gradient 2·W ∘ exp(W∘W)ᵀ.
//
// h is zero exactly when the weighted graph of W has no directed cycle
// (self-loops included) and positive otherwise.
//
// Errors:
//   - ErrShapeMismatch with matrix.ErrNilMatrix or matrix.ErrNonSquare.
func Acyclicity(w matrix.Matrix) (float64, *matrix.Dense, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return 0, nil, shapeErrorf(opAcyclicity, err)
	}
	h, grad, err := acyclicity(w)
	if err != nil {
		return 0, nil, lossErrorf(opAcyclicity, err)
	}

	return h, grad, nil
}

// acyclicity is the shared kernel behind every penalty entry point.
// The caller has validated that w is a non-nil square matrix.
func acyclicity(w matrix.Matrix) (float64, *matrix.Dense, error) {
	sq, err := matrix.Hadamard(w, w)
	if err != nil {
		return 0, nil, err
	}
	e, err := matrix.Exp(sq)
	if err != nil {
		return 0, nil, err
	}
	tr, err := matrix.Trace(e)
	if err != nil {
		return 0, nil, err
	}
	et, err := matrix.Transpose(e)
	if err != nil {
		return 0, nil, err
	}
	grad, err := matrix.Hadamard(et, w)
	if err != nil {
		return 0, nil, err
	}
	grad, err = matrix.Scale(grad, 2)
	if err != nil {
		return 0, nil, err
	}

	return tr - float64(w.Rows()), grad, nil
}

// penaltyTerm is α·h + ½·ρ·h², evaluated identically on every path.
func penaltyTerm(h, alpha, rho float64) float64 {
	return alpha*h + 0.5*rho*h*h
}

// PenaltySingle computes the acyclicity penalty of one d×d matrix:
//
//	loss      = α·h + ½·ρ·h²
//	∂loss/∂W  = (α + ρ·h)·∂h/∂W
//
// w is not modified. alpha and rho are used as given.
//
// Errors:
//   - ErrShapeMismatch with matrix.ErrNilMatrix or matrix.ErrNonSquare.
func PenaltySingle(w matrix.Matrix, alpha, rho float64) (SingleLoss, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return SingleLoss{}, shapeErrorf(opPenaltySingle, err)
	}
	h, dh, err := acyclicity(w)
	if err != nil {
		return SingleLoss{}, lossErrorf(opPenaltySingle, err)
	}
	grad, err := matrix.Scale(dh, alpha+rho*h)
	if err != nil {
		return SingleLoss{}, lossErrorf(opPenaltySingle, err)
	}

	return SingleLoss{Value: penaltyTerm(h, alpha, rho), GradW: grad}, nil
}

// PenaltyBatched computes the mean acyclicity penalty over a batch of N d×d
// matrices:
//
//	loss        = (1/N)·Σ_k (α·h_k + ½·ρ·h_k²)
//	∂loss/∂W_k  = (α + ρ·h_k)/N · ∂h_k/∂W_k
//
// Items are evaluated in parallel on the configured pool. GradX is nil.
//
// Errors:
//   - ErrShapeMismatch with matrix.ErrNilMatrix (nil batch),
//     matrix.ErrDimensionMismatch (empty batch) or matrix.ErrNonSquare.
//     All are reported before any exponential is computed.
func PenaltyBatched(w *matrix.Batch, alpha, rho float64, opts ...Option) (Loss, error) {
	if err := matrix.ValidateBatchSquare(w); err != nil {
		return Loss{}, shapeErrorf(opPenaltyBatched, err)
	}
	n, d, _ := w.Shape()
	grad, err := matrix.NewBatch(n, d, d)
	if err != nil {
		return Loss{}, lossErrorf(opPenaltyBatched, err)
	}

	hs := make([]float64, n)
	errs := make([]error, n)
	invN := 1 / float64(n)
	o := gatherOptions(opts...)
	o.parallelFor(n, func(start, end int) {
		for k := start; k < end; k++ {
			item, err := w.Item(k)
			if err != nil {
				errs[k] = err
				continue
			}
			h, dh, err := acyclicity(item)
			if err != nil {
				errs[k] = err
				continue
			}
			hs[k] = h
			errs[k] = grad.SetItemScaled(k, dh, (alpha+rho*h)*invN)
		}
	})
	for k, err := range errs {
		if err != nil {
			return Loss{}, lossErrorf(opPenaltyBatched, fmt.Errorf("item %d: %w", k, err))
		}
	}

	var total float64
	for _, h := range hs {
		total += penaltyTerm(h, alpha, rho)
	}

	return Loss{Value: total / float64(n), GradW: grad}, nil
}
