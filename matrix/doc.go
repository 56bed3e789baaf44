// Package matrix offers dense row-major matrices, batches of equally shaped
// matrices, and the linear-algebra kernels the loss package is built from.
//
// The matrix package provides:
//
//   - Dense: a flat, row-major float64 matrix with bounds-checked At/Set.
//   - Batch: an N×r×c stack stored in one contiguous buffer; Item(k) returns
//     a no-copy *Dense view of the k-th matrix.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, Hadamard, MatVec, VecMat,
//     Trace, Exp (matrix exponential), SumAbs, SquaredNorm, Sum, Sign and
//     AllClose.
//
// Every kernel validates shapes up front and returns sentinel errors
// (ErrDimensionMismatch, ErrNonSquare, ErrNilMatrix, ...) wrapped with an
// operation tag; inputs are never mutated and results are freshly allocated.
//
// Kernels never reject NaN or ±Inf produced by arithmetic: non-finite values
// propagate to the caller. Only explicit writes through Set honor the
// finite-only numeric policy (see WithValidateNaNInf).
package matrix
