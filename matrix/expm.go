// SPDX-License-Identifier: MIT

// Package matrix - matrix exponential.
//
// Purpose:
//   - Provide exp(A) for square matrices, the core primitive of the continuous
//     acyclicity measure tr(exp(W∘W)) − d.
//
// Implementation:
//   - Delegates to gonum's mat.Dense.Exp (Padé approximation with scaling and
//     squaring, Higham 2005). The gonum view shares the input buffer and writes
//     straight into the freshly allocated result, so there is no extra copy.
//
// Numeric policy:
//   - Non-finite input (any NaN or ±Inf entry) yields an all-NaN result instead
//     of entering the scaling loop with an undefined norm. Finite but huge input
//     overflows to ±Inf/NaN naturally; nothing is clamped.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const opExp = "Exp"

// Exp returns the matrix exponential exp(m) = Σ_k m^k / k!.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (checked before any numeric work).
//
// Complexity:
//   - Time O(n³·(p + s)) where p is the Padé degree and s the number of squarings.
//   - Space O(n²).
//
// AI-Hints:
//   - tr(exp(A)) is differentiable with ∂/∂A = exp(A)ᵀ; callers computing a
//     gradient reuse this result instead of differentiating the series.
func Exp(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	src, err := flatten(m, opExp)
	if err != nil {
		return nil, err
	}
	n := m.Rows()
	res, err := newResult(n, n)
	if err != nil {
		return nil, matrixErrorf(opExp, err)
	}

	for _, v := range src {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			for idx := range res.data {
				res.data[idx] = math.NaN()
			}

			return res, nil
		}
	}

	// gonum views: a shares src (read-only), dst shares res.data (written).
	a := mat.NewDense(n, n, src)
	dst := mat.NewDense(n, n, res.data)
	dst.Exp(a)

	return res, nil
}
