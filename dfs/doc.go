// Package dfs implements depth-first search traversal, cycle detection,
// topological sort and DAG projection on the directed graph encoded by a
// dense weighted adjacency matrix W (edge i→j iff |W[i,j]| > threshold).
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - DetectCycles: reports directed cycles (self-loops included) using vertex
//     coloring (White, Gray, Black) with back-edge recording and canonical
//     signature deduplication.
//   - TopologicalSort / IsDAG: linear ordering of a DAG, ErrCycleDetected
//     otherwise.
//   - ProjectToDAG: the smallest magnitude cut-off that leaves a DAG, and the
//     pruned matrix.
//
// Why:
//   - A learned weight matrix is only "approximately" acyclic: the continuous
//     penalty drives h(W) towards 0 but never prunes edges. These routines
//     give the combinatorial answer on the thresholded graph.
//   - Ancestral sampling from a linear SEM needs a topological order.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option / DFSOptions: functional options for DFS behavior
//   - TopoOption: WithCancelContext, WithThreshold for the structural routines
//   - DFSResult: post-order, Depth, Parent, Visited (slices indexed by vertex)
//
// Complexity:
//
//   - Every routine scans W once: O(d²).
//   - DFS, TopologicalSort: O(V+E) on top, Memory O(V+E).
//   - DetectCycles: O(V+E + C·L) (C=#cycles, L=avg cycle length).
//   - ProjectToDAG: O(d² log d).
//
// Errors:
//
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare  bad adjacency shape
//   - matrix.ErrNaNInf        non-finite weight (no edge decision possible)
//   - ErrStartVertexNotFound  start index outside [0, d)
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
