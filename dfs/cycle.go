// Package dfs implements cycle detection for directed graphs given as dense
// weighted adjacency matrices. DetectCycles reports the cycles closed by back
// edges of a depth-first search with three-color marking, self-loops included,
// and produces the canonical minimal rotation of each cycle via Booth's
// algorithm in O(L) time. The final cycle list is sorted for deterministic
// output.
//
// Complexity:
//
//   - Time:   O(d² + C·L)   (C=#cycles, L=avg cycle length)
//   - Memory: O(V + E + L_max)
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dagloss/matrix"
)

// cycleFinder carries DFS state for DetectCycles.
type cycleFinder struct {
	adj    *adjacency
	opts   topoOptions
	state  []int
	path   []int               // current DFS path (stack) for cycle reconstruction
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]int
}

// DetectCycles inspects the thresholded graph of w for cycles.
// Returns (true, cycles, nil) if any cycles are found; each cycle is closed
// ([v0, v1, ..., v0]) and starts at its smallest vertex. Returns
// (false, nil, nil) for a DAG.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf; ctx.Err().
func DetectCycles(w matrix.Matrix, options ...TopoOption) (bool, [][]int, error) {
	opts := gatherTopoOptions(options...)
	adj, err := newAdjacency(w, opts.threshold)
	if err != nil {
		return false, nil, err
	}
	n := adj.order()
	f := &cycleFinder{
		adj:   adj,
		opts:  opts,
		state: make([]int, n),
		path:  make([]int, 0, n),
		seen:  make(map[string]struct{}),
	}

	for v := 0; v < n; v++ {
		if f.state[v] == White {
			if err = f.visit(v); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	// Deterministic order: lexicographic over closed cycles.
	slices.SortFunc(f.cycles, slices.Compare[[]int])

	if len(f.cycles) == 0 {
		return false, nil, nil
	}

	return true, f.cycles, nil
}

// visit performs recursive DFS from v and records every Gray→Gray back edge.
func (f *cycleFinder) visit(v int) error {
	select {
	case <-f.opts.ctx.Done():
		return f.opts.ctx.Err()
	default:
	}

	f.state[v] = Gray
	f.path = append(f.path, v)

	for _, nb := range f.adj.out[v] {
		switch f.state[nb] {
		case White:
			if err := f.visit(nb); err != nil {
				return err
			}
		case Gray:
			f.record(nb)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[v] = Black

	return nil
}

// record extracts the cycle that ends at start and keeps it if new.
// path holds [ ... start ... current ].
func (f *cycleFinder) record(start int) {
	idx := IndexOf(f.path, start)
	base := append([]int(nil), f.path[idx:]...)

	canon := MinimalRotation(base)
	canon = append(canon, canon[0])
	sig := JoinSig(canon)
	if _, exists := f.seen[sig]; !exists {
		f.seen[sig] = struct{}{}
		f.cycles = append(f.cycles, canon)
	}
}
