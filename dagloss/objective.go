// SPDX-License-Identifier: MIT

package dagloss

import "github.com/katalvlaran/dagloss/matrix"

// L1 returns the entrywise L1 norm Σ|W| over the whole batch and its
// subgradient sign(W) (0 where W is 0). GradX is nil.
//
// Errors:
//   - ErrShapeMismatch with matrix.ErrNilMatrix.
func L1(w *matrix.Batch) (Loss, error) {
	if w == nil {
		return Loss{}, shapeErrorf(opL1, matrix.ErrNilMatrix)
	}
	v, err := w.SumAbs()
	if err != nil {
		return Loss{}, lossErrorf(opL1, err)
	}
	g, err := w.Sign()
	if err != nil {
		return Loss{}, lossErrorf(opL1, err)
	}

	return Loss{Value: v, GradW: g}, nil
}

// Objective is the NOTEARS loss over a batch:
//
//	loss = Fit(x, W) + λ·L1(W) + PenaltyBatched(W, α, ρ)
//
// The value is summed in exactly that order, and the W gradient is the sum of
// the component gradients. GradX comes from Fit alone. l1Lambda is used as
// given (a negative value is not rejected).
//
// When no pool is supplied, one transient pool serves both Fit and the
// penalty.
//
// Errors:
//   - Any error of Fit or PenaltyBatched, unchanged.
func Objective(x matrix.Matrix, w *matrix.Batch, l1Lambda, alpha, rho float64, opts ...Option) (Loss, error) {
	o := gatherOptions(opts...)
	p, release := o.acquire()
	defer release()
	shared := WithPool(p)

	fit, err := Fit(x, w, shared)
	if err != nil {
		return Loss{}, err
	}
	pen, err := PenaltyBatched(w, alpha, rho, shared)
	if err != nil {
		return Loss{}, err
	}
	l1, err := L1(w)
	if err != nil {
		return Loss{}, err
	}

	grad := fit.GradW
	if err = grad.AddScaled(l1Lambda, l1.GradW); err != nil {
		return Loss{}, lossErrorf(opObjective, err)
	}
	if err = grad.AddScaled(1, pen.GradW); err != nil {
		return Loss{}, lossErrorf(opObjective, err)
	}

	return Loss{
		Value: fit.Value + l1Lambda*l1.Value + pen.Value,
		GradW: grad,
		GradX: fit.GradX,
	}, nil
}
