package bfs

import (
	"fmt"

	"github.com/katalvlaran/dagloss/matrix"
)

// Reachability returns the transitive closure of the thresholded graph:
// reach[i][j] is true iff a directed path of length ≥ 1 leads from i to j.
// reach[i][i] is therefore true only when i lies on a cycle.
//
// Only WithThreshold and WithContext are honored; hooks, filters and depth
// limits are ignored.
//
// Complexity: O(d·(d+E)) time, O(d²) space.
func Reachability(w matrix.Matrix, opts ...Option) ([][]bool, error) {
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

	d := len(out)
	reach := make([][]bool, d)
	queue := make([]int, 0, d)
	for s := 0; s < d; s++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		row := make([]bool, d)
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, u := range out[v] {
				if !row[u] {
					row[u] = true
					queue = append(queue, u)
				}
			}
		}
		reach[s] = row
	}

	return reach, nil
}

// Descendants lists every vertex reachable from v in ascending order.
func Descendants(w matrix.Matrix, v int, opts ...Option) ([]int, error) {
	res, err := BFS(w, v, opts...)
	if err != nil {
		return nil, fmt.Errorf("bfs: descendants of %d: %w", v, err)
	}
	var out []int
	for u := range res.Depth {
		if u != v && res.Reached(u) {
			out = append(out, u)
		}
	}

	return out, nil
}
