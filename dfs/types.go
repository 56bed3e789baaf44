// Package dfs defines types and options for depth-first search over a dense
// weighted adjacency matrix, including cancellation, pre-/post-order hooks,
// depth limiting, neighbor filtering, full (forest) traversal, and basic
// diagnostics.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// DefaultThreshold is the edge cut-off: i→j is an edge iff |W[i,j]| > threshold.
const DefaultThreshold = 0.0

var (
	// ErrStartVertexNotFound indicates that the start index is outside [0, d).
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNegativeThreshold is returned for a threshold below zero.
	ErrNegativeThreshold = errors.New("dfs: negative threshold")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(w, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(d²) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(v int) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex (forest).
	FullTraversal bool

	// Threshold is the edge cut-off applied to |W[i,j]|.
	Threshold float64

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
//   - DefaultThreshold
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:       context.Background(),
		MaxDepth:  -1,
		Threshold: DefaultThreshold,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbors.
// If fn(v) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables full-graph traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// WithEdgeThreshold sets the edge cut-off for traversal.
// Panics on a negative or NaN threshold.
func WithEdgeThreshold(t float64) Option {
	if !(t >= 0) {
		panic(ErrNegativeThreshold)
	}

	return func(o *DFSOptions) {
		o.Threshold = t
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// Slices are indexed by vertex; unvisited vertices keep Depth -1 and Parent -1.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth holds each vertex's distance (#edges) from its tree root.
	Depth []int

	// Parent holds the vertex from which each vertex was first discovered.
	// Roots keep -1.
	Parent []int

	// Visited flags which vertices were reached during the traversal.
	Visited []bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
