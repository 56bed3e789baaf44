// Package dfs provides core algorithms on directed graphs given as dense
// weighted adjacency matrices, including topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every edge u→v (|W[u,v]| > threshold), u appears before v in the ordering.
// If the graph contains a cycle (self-loops included), ErrCycleDetected is
// returned.
//
// Complexity:
//
//   - Time:   O(d²) to scan W, then O(V + E)
//   - Memory: O(V + E) (neighbor lists, recursion stack and state slice)
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dagloss/matrix"
)

// TopoOption configures optional behavior for TopologicalSort, DetectCycles,
// IsDAG and ProjectToDAG.
type TopoOption func(*topoOptions)

// topoOptions holds settings for the structural routines.
type topoOptions struct {
	ctx       context.Context // allows cancellation; defaults to Background
	threshold float64         // edge cut-off on |W[i,j]|
}

// defaultTopoOptions returns the default options (Background context, DefaultThreshold).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background(), threshold: DefaultThreshold}
}

func gatherTopoOptions(options ...TopoOption) topoOptions {
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	return opts
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithThreshold sets the edge cut-off: i→j is an edge iff |W[i,j]| > t.
// Panics on a negative or NaN t.
func WithThreshold(t float64) TopoOption {
	if !(t >= 0) {
		panic(ErrNegativeThreshold)
	}

	return func(o *topoOptions) {
		o.threshold = t
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	adj   *adjacency
	opts  topoOptions
	state []int // visitation state: White, Gray, Black
	order []int // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices of w.
// Roots are tried in ascending index order, so the result is deterministic.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf for bad input.
//   - ErrCycleDetected if a cycle (or self-loop) survives the threshold.
//   - ctx.Err() if the WithCancelContext context is done.
func TopologicalSort(w matrix.Matrix, options ...TopoOption) ([]int, error) {
	opts := gatherTopoOptions(options...)
	adj, err := newAdjacency(w, opts.threshold)
	if err != nil {
		return nil, err
	}

	return topoSort(adj, opts)
}

func topoSort(adj *adjacency, opts topoOptions) ([]int, error) {
	n := adj.order()
	sorter := &topoSorter{
		adj:   adj,
		opts:  opts,
		state: make([]int, n),    // all vertices start as White (0)
		order: make([]int, 0, n), // capacity hint for post-order
	}
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order to produce topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting cycles.
func (t *topoSorter) visit(v int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	if t.state[v] == Gray {
		return fmt.Errorf("%w: back edge into %d", ErrCycleDetected, v)
	}
	if t.state[v] == Black {
		return nil
	}
	t.state[v] = Gray
	for _, nb := range t.adj.out[v] {
		if err := t.visit(nb); err != nil {
			return err
		}
	}
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}

// IsDAG reports whether the thresholded graph of w has no directed cycle.
// Errors are those of TopologicalSort other than ErrCycleDetected.
func IsDAG(w matrix.Matrix, options ...TopoOption) (bool, error) {
	_, err := TopologicalSort(w, options...)
	if errors.Is(err, ErrCycleDetected) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
