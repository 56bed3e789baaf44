// Package builder provides reusable “functional-options”-style building blocks
// for adjacency fixtures and synthetic data used by DAG-learning code. It
// centralizes RNG policy, weight distributions and validation logic, keeping
// tests and demos deterministic.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function and SEM noise level.
//   - Topology constructors (applied by BuildAdjacency):
//     – Chain:     0→1→…→d-1.
//     – Cycle:     Chain plus d-1→0.
//     – Star:      0→i for every i ≥ 1.
//     – Complete:  every i→j with i<j.
//     – RandomDAG: Erdős–Rényi edges over a random causal order.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:        constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:       fixed user-provided value.
//     – SignedUniformWeightFn:  |w| ∼U[lo,hi] with a random sign.
//     – NormalWeightFn:         Gaussian ∼N(mean,stddev) (gonum distuv).
//   - Data generation:
//     – SampleLinearSEM: ancestral sampling of x = x·W + ε, ε ∼N(0,σ²).
//   - Shared constants:
//     – MinChainNodes, MinCycleNodes, MinStarNodes, …
//     – DefaultEdgeWeight, MinProbability, MaxProbability.
//     – MethodChain, MethodCycle, … tokens for error context.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrBadSize) wrapped with method context.
//   - Same options, seed and constructor order ⇒ identical output.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
