// Package bfs provides breadth-first search over a weighted adjacency matrix,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/dagloss/matrix"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	out   [][]int
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on w starting from start,
// applying any number of functional Options.
// Returns matrix.ErrNilMatrix / matrix.ErrNonSquare / matrix.ErrNaNInf for an
// unusable w, ErrStartVertexNotFound, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
func BFS(w matrix.Matrix, start int, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	out, err := neighbors(w, o.Threshold)
	if err != nil {
		return nil, err
	}
	n := len(out)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (d=%d)", ErrStartVertexNotFound, start, n)
	}

	wk := &walker{
		out:   out,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, -1),
			Parent: filled(n, -1),
		},
	}

	// Seed queue with start vertex (no parent)
	wk.enqueue(start, 0, -1)

	return wk.res, wk.loop()
}

// neighbors validates w and returns ascending out-neighbor lists of |W| > t.
func neighbors(w matrix.Matrix, t float64) ([][]int, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	d := w.Rows()
	out := make([][]int, d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			v, err := w.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("bfs: %w", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("bfs: W[%d,%d]=%v: %w", i, j, v, matrix.ErrNaNInf)
			}
			if math.Abs(v) > t {
				out[i] = append(out[i], j)
			}
		}
	}

	return out, nil
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

// enqueue marks v seen at depth d, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor in ascending index order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.out[item.v] {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}
}
