// Package bfs provides breadth-first search over a dense weighted adjacency
// matrix, returning unweighted shortest-path distances, parent links, and
// visit order, plus the reachability closure used to compare causal graphs.
//
// What
//
//   - Vertices are the indices 0..d-1 of a square matrix.Matrix; i→j is an
//     edge iff |W[i,j]| > Threshold (default 0, see WithThreshold).
//   - BFS explores vertices in non-decreasing distance from a start vertex
//     and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: distance (edges) from start, -1 when unreached
//   - Parent: predecessor in the BFS tree, -1 for the root
//   - Hooks: OnEnqueue (before a vertex is enqueued) and OnVisit (may abort).
//   - Neighbor filtering via WithFilterNeighbor, depth limit via WithMaxDepth.
//   - Reachability builds the full transitive closure; Descendants lists what
//     one vertex can influence.
//
// Determinism
//
//	Neighbors are scanned in ascending column order, so the visit sequence
//	is fully reproducible.
//
// Complexity (d = vertices, E = edges above threshold)
//
//   - BFS: O(d² + E) including the adjacency scan; Memory O(d + E).
//   - Reachability: O(d·(d+E)); Memory O(d²).
//
// Usage
//
//	res, err := bfs.BFS(w, 0, bfs.WithThreshold(0.3), bfs.WithMaxDepth(2))
//	path, err := res.PathTo(4)
//	reach, err := bfs.Reachability(w)
package bfs
