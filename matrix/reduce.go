// SPDX-License-Identifier: MIT

// Package matrix - reductions and element-wise sanitizers.
//
// Purpose:
//   - Scalar reductions used by loss terms: Trace, Sum, SumAbs (L1), SquaredNorm (Frobenius²).
//   - Element-wise Sign (L1 subgradient) and AllClose (numeric comparison for tests/invariants).
//
// Determinism:
//   - Sum and SquaredNorm go through go-highway vec kernels; lane-wise partial sums
//     are combined in a fixed order, so results are reproducible on one machine.
//   - Trace and SumAbs use a fixed 0..n-1 scalar loop.

package matrix

import (
	"math"

	"github.com/ajroetker/go-highway/hwy/contrib/vec"
)

const (
	opTrace       = "Trace"
	opSum         = "Sum"
	opSumAbs      = "SumAbs"
	opSquaredNorm = "SquaredNorm"
	opSign        = "Sign"
	opAllClose    = "AllClose"
)

// Trace returns Σ_i m[i,i] for a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := m.Rows()
	acc := ZeroSum
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			acc += d.data[i*n+i]
		}

		return acc, nil
	}

	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		acc += v
	}

	return acc, nil
}

// Sum returns Σ m[i,j].
// Errors: ErrNilMatrix.
func Sum(m Matrix) (float64, error) {
	buf, err := flatten(m, opSum)
	if err != nil {
		return 0, err
	}

	return vec.BaseSum(buf), nil
}

// SumAbs returns the entrywise L1 norm Σ|m[i,j]|.
// Errors: ErrNilMatrix.
func SumAbs(m Matrix) (float64, error) {
	buf, err := flatten(m, opSumAbs)
	if err != nil {
		return 0, err
	}

	return sumAbs(buf), nil
}

// SquaredNorm returns the squared Frobenius norm Σ m[i,j]².
// Errors: ErrNilMatrix.
func SquaredNorm(m Matrix) (float64, error) {
	buf, err := flatten(m, opSquaredNorm)
	if err != nil {
		return 0, err
	}

	return vec.BaseSquaredNorm(buf), nil
}

// Sign returns a new matrix with sign(m[i,j]) ∈ {-1, 0, +1}; NaN stays NaN.
// This is the subgradient of SumAbs used for L1 sparsity terms.
// Errors: ErrNilMatrix.
func Sign(m Matrix) (*Dense, error) {
	buf, err := flatten(m, opSign)
	if err != nil {
		return nil, err
	}
	res, err := newResult(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opSign, err)
	}
	signInto(res.data, buf)

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	av, err := flatten(a, opAllClose)
	if err != nil {
		return false, err
	}
	bv, err := flatten(b, opAllClose)
	if err != nil {
		return false, err
	}
	for idx := range av {
		if !closeTo(av[idx], bv[idx], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// closeTo is the scalar AllClose relation.
func closeTo(a, b, rtol, atol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// flatten returns the row-major values of m: the backing slice for *Dense
// (read-only use only) or a fresh copy for other implementations.
func flatten(m Matrix, tag string) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// sumAbs is the flat L1 kernel shared by SumAbs and Batch.SumAbs.
func sumAbs(buf []float64) float64 {
	acc := ZeroSum
	for _, v := range buf {
		acc += math.Abs(v)
	}

	return acc
}

// signInto writes sign(src[i]) into dst[i]. len(dst) == len(src).
func signInto(dst, src []float64) {
	for i, v := range src {
		switch {
		case v > 0:
			dst[i] = 1
		case v < 0:
			dst[i] = -1
		case v == 0:
			dst[i] = 0
		default:
			dst[i] = v // NaN
		}
	}
}
