// SPDX-License-Identifier: MIT

package dagloss

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib/vec"

	"github.com/katalvlaran/dagloss/matrix"
)

// Fit computes the reconstruction MSE of N samples against N per-sample
// adjacency matrices, with x' = x·W:
//
//	r_k          = x_k − x_k·W_k
//	loss         = (0.5/N)·Σ_k ‖r_k‖²
//	∂loss/∂W_k   = −x_kᵀ·r_k / N          (outer product, d×d)
//	∂loss/∂x_k   = (r_k − r_k·W_kᵀ) / N
//
// x is N×d; w is N×d×d. Neither is modified.
//
// Errors:
//   - ErrShapeMismatch with matrix.ErrNilMatrix (nil input),
//     matrix.ErrNonSquare (W items not square) or matrix.ErrDimensionMismatch
//     (empty batch, x.Rows() != N, x.Cols() != d).
func Fit(x matrix.Matrix, w *matrix.Batch, opts ...Option) (Loss, error) {
	if err := validateFit(x, w); err != nil {
		return Loss{}, shapeErrorf(opFit, err)
	}
	n, d, _ := w.Shape()
	rows, err := sampleRows(x)
	if err != nil {
		return Loss{}, lossErrorf(opFit, err)
	}
	gradW, err := matrix.NewBatch(n, d, d)
	if err != nil {
		return Loss{}, lossErrorf(opFit, err)
	}
	gradX, err := matrix.NewDense(n, d, matrix.WithValidateNaNInf(false))
	if err != nil {
		return Loss{}, lossErrorf(opFit, err)
	}

	sq := make([]float64, n)
	errs := make([]error, n)
	invN := 1 / float64(n)
	o := gatherOptions(opts...)
	o.parallelFor(n, func(start, end int) {
		for k := start; k < end; k++ {
			sq[k], errs[k] = fitSample(k, rows[k], w, gradW, gradX, invN)
		}
	})
	for k, err := range errs {
		if err != nil {
			return Loss{}, lossErrorf(opFit, fmt.Errorf("sample %d: %w", k, err))
		}
	}

	var total float64
	for _, s := range sq {
		total += s
	}

	return Loss{Value: 0.5 * invN * total, GradW: gradW, GradX: gradX}, nil
}

// fitSample evaluates sample k, writes its gradient slots and returns ‖r_k‖².
func fitSample(k int, xk []float64, w, gradW *matrix.Batch, gradX *matrix.Dense, invN float64) (float64, error) {
	wk, err := w.Item(k)
	if err != nil {
		return 0, err
	}
	pred, err := matrix.VecMat(xk, wk)
	if err != nil {
		return 0, err
	}
	r := make([]float64, len(xk))
	vec.BaseSubTo(r, xk, pred)

	outer, err := matrix.Outer(xk, r)
	if err != nil {
		return 0, err
	}
	if err = gradW.SetItemScaled(k, outer, -invN); err != nil {
		return 0, err
	}

	// r·W_kᵀ is the column product W_k·r.
	back, err := matrix.MatVec(wk, r)
	if err != nil {
		return 0, err
	}
	gx := make([]float64, len(r))
	vec.BaseSubTo(gx, r, back)
	for j := range gx {
		gx[j] *= invN
	}
	if err = gradX.SetRow(k, gx); err != nil {
		return 0, err
	}

	return vec.BaseSquaredNorm(r), nil
}

func validateFit(x matrix.Matrix, w *matrix.Batch) error {
	if err := matrix.ValidateNotNil(x); err != nil {
		return err
	}
	if err := matrix.ValidateBatchSquare(w); err != nil {
		return err
	}
	if x.Rows() != w.Len() {
		return fmt.Errorf("x has %d samples, W batch has %d: %w", x.Rows(), w.Len(), matrix.ErrDimensionMismatch)
	}
	if x.Cols() != w.Rows() {
		return fmt.Errorf("x has %d features, W is %dx%d: %w", x.Cols(), w.Rows(), w.Cols(), matrix.ErrDimensionMismatch)
	}

	return nil
}

// sampleRows copies the rows of x, using RawRow for *Dense.
func sampleRows(x matrix.Matrix) ([][]float64, error) {
	out := make([][]float64, x.Rows())
	if d, ok := x.(*matrix.Dense); ok {
		var err error
		for i := range out {
			if out[i], err = d.RawRow(i); err != nil {
				return nil, err
			}
		}

		return out, nil
	}
	cols := x.Cols()
	for i := range out {
		row := make([]float64, cols)
		for j := range row {
			v, err := x.At(i, j)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		out[i] = row
	}

	return out, nil
}
