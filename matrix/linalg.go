// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, Hadamard product and vector products. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other implementations use a
//     fixed i→j(→k) At/Set fallback that produces identical results.

package matrix

import "fmt"

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opVecMat    = "VecMat"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// newResult allocates the result buffer for kernels. Results carry raw
// arithmetic output, so the finite-only Set policy is off.
func newResult(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols, WithValidateNaNInf(false))
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := newResult(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Zero entries of A are NOT skipped: 0*Inf must stay NaN so numeric
//     instability in either operand reaches the caller.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newResult(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		av, bv  float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var current float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newResult(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var base int
		for i := 0; i < rows; i++ {
			base = i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape (NaN inputs stay NaN).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newResult(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Hadamard(W, W) is the sign-free square W∘W used by the acyclicity measure.
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := newResult(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var acc float64
		var base int
		for i := 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j := 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMat computes the row-vector product y = x · m (y[j] = Σ_i x[i]·m[i,j]).
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Determinism: fixed i→j accumulation order (rows outer), so y is stable
// across runs and equal to MatVec(mᵀ, x) up to accumulation order.
// Complexity: Time O(r*c), Space O(c) for y.
//
// AI-Hints:
//   - This is the reconstruction x' = x·W used by the data-fit term.
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		vecMatInto(y, x, d)

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opVecMat, err)
			}
			y[j] += x[i] * mv
		}
	}

	return y, nil
}

// vecMatInto writes x·d into y. Caller guarantees len(x)==d.r, len(y)==d.c.
func vecMatInto(y, x []float64, d *Dense) {
	for j := range y {
		y[j] = ZeroSum
	}
	var base int
	for i := 0; i < d.r; i++ {
		base = i * d.c
		xi := x[i]
		for j := 0; j < d.c; j++ {
			y[j] += xi * d.data[base+j]
		}
	}
}

// Outer returns the outer product x ⊗ y (len(x)×len(y), out[i,j] = x[i]·y[j]).
//
// Errors:
//   - ErrNilMatrix (nil vector), ErrInvalidDimensions (empty vector).
//
// Complexity: Time O(|x|·|y|), Space O(|x|·|y|).
func Outer(x, y []float64) (*Dense, error) {
	if x == nil || y == nil {
		return nil, matrixErrorf("Outer", ErrNilMatrix)
	}
	res, err := newResult(len(x), len(y))
	if err != nil {
		return nil, matrixErrorf("Outer", err)
	}
	cols := len(y)
	for i, xi := range x {
		base := i * cols
		for j, yj := range y {
			res.data[base+j] = xi * yj
		}
	}

	return res, nil
}
