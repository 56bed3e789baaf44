// SPDX-License-Identifier: MIT

// Package dagloss provides differentiable loss terms for learning DAG
// structure: the acyclicity penalty, the data-fit term and the combined
// NOTEARS objective. Every function returns a scalar loss together with the
// gradients a caller needs for a gradient step.
//
// Convention:
//
//	W[i,j] is the weight of the edge i→j. A sample x (row vector) is
//	reconstructed as x' = x·W, so feature j is predicted from its parents i.
//
// Acyclicity (Zheng et al., NOTEARS):
//
//	h(W)     = tr(exp(W∘W)) − d        (h == 0 iff W is a DAG)
//	∂h/∂W    = 2·W ∘ exp(W∘W)ᵀ
//	penalty  = α·h + ½·ρ·h²
//	∂pen/∂W  = (α + ρ·h)·∂h/∂W
//
// Single vs batch:
//   - PenaltySingle takes one d×d matrix.
//   - PenaltyBatched takes an N×d×d batch and averages the per-item penalties;
//     a batch of size 1 yields the same value and gradient as PenaltySingle.
//
// Parameters alpha and rho are read-only inputs. Updating them between calls
// is the job of package schedule; nothing here keeps state.
//
// Concurrency:
//   - Batched operations split items across a go-highway workerpool. Each
//     worker writes its own output slots; reductions run sequentially in item
//     order, so results do not depend on the number of workers.
//
// Errors:
//   - Shape violations wrap ErrShapeMismatch together with the matrix sentinel
//     that describes them (matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch), so both match errors.Is.
//   - Non-finite inputs are not rejected; NaN/Inf propagate into the loss.
package dagloss
