// Package dagloss is a small toolkit for learning DAG structure with
// continuous optimization: differentiable acyclicity penalties, data-fit
// losses and the augmented-Lagrangian objective that combines them.
//
// 🚀 What is inside?
//
//	• Acyclicity: h(W) = tr(exp(W∘W)) − d and its closed-form gradient
//	• Penalties: single-matrix and batched αh + ½ρh² with analytic gradients
//	• Data fit: per-sample reconstruction MSE for x' = x·W
//	• Objective: fit + λ·L1 + penalty, the NOTEARS loss
//	• Schedule: alpha/rho dual ascent kept outside the loss functions
//	• Structure: topological order, cycle detection, DAG projection and reachability
//	• Fixtures: chain/cycle/star/complete/random-DAG adjacency and linear-SEM samples
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/    row-major Dense, Batch (N×d×d), kernels and the matrix exponential
//	dagloss/   acyclicity, penalties, fit, L1 and the combined objective
//	schedule/  augmented-Lagrangian alpha/rho schedule
//	dfs/       topological sort, cycle detection, ProjectToDAG on dense adjacency
//	bfs/       layered traversal, reachability closure and descendants
//	builder/   deterministic adjacency fixtures and SampleLinearSEM
//
// Quick ASCII example (edge i→j when W[i,j] != 0):
//
//	    0───►1───►2        W = [[0, a, 0],
//	                            [0, 0, b],
//	                            [0, 0, 0]]   h(W) = 0
//
//	go get github.com/katalvlaran/dagloss
package dagloss
