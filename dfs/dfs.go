// Package dfs implements depth-first search (single-source and forest) on a
// dense weighted adjacency matrix. Vertex i has an edge to j when
// |W[i,j]| exceeds the configured threshold.
//
// Key features:
//   - DFS(w, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(d²) to scan the matrix, then O(V + E) for traversal.
//   - Memory: O(V + E) for the neighbor lists and recursion stack.
//
// Errors:
//
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf for bad input.
//   - ErrStartVertexNotFound    if start is outside [0, d).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/dagloss/matrix"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj  *adjacency
	opts DFSOptions
	res  *DFSResult
}

// DFS performs depth-first search on the graph of w. If opts include
// WithFullTraversal, it covers all components in index order; otherwise, it
// starts only from start.
// Returns DFSResult or error if aborted by context or hook.
func DFS(w matrix.Matrix, start int, opts ...Option) (*DFSResult, error) {
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	adj, err := newAdjacency(w, dopts.Threshold)
	if err != nil {
		return nil, err
	}
	n := adj.order()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, ErrStartVertexNotFound
	}

	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	walker := &dfsWalker{adj: adj, opts: dopts, res: res}
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err = walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err = walker.traverse(start, 0); err != nil {
		return res, err
	}

	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex v at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	for _, nb := range w.adj.out[v] {
		if nb == v {
			continue // self-loops never extend a traversal
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
			continue
		}
		if !w.res.Visited[nb] {
			w.res.Parent[nb] = v
			if err := w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	w.res.Order = append(w.res.Order, v)

	return nil
}
