// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/dagloss/matrix"
)

// ProjectToDAG prunes small weights until the graph of w is acyclic.
//
// Implementation:
//   - Stage 1: collect the distinct magnitudes |W[i,j]| above the base
//     threshold (WithThreshold, default 0), ascending.
//   - Stage 2: binary-search the smallest cut-off t from {base} ∪ magnitudes
//     such that the edges |W[i,j]| > t form a DAG. Raising t only removes
//     edges, so acyclicity is monotone in t.
//   - Stage 3: return a copy of w with every |W[i,j]| <= t set to 0.
//
// Returns the pruned copy and t. w is not modified.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf; ctx.Err().
//
// Complexity: O(d² log d) for sorting plus O(d² log d) for the search.
func ProjectToDAG(w matrix.Matrix, options ...TopoOption) (*matrix.Dense, float64, error) {
	opts := gatherTopoOptions(options...)
	adj, err := newAdjacency(w, opts.threshold)
	if err != nil {
		return nil, 0, err
	}
	d := adj.order()

	mags := make([]float64, 0, d*d)
	var v float64
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			v, _ = w.At(i, j) // bounds and finiteness checked by newAdjacency
			if a := math.Abs(v); a > opts.threshold {
				mags = append(mags, a)
			}
		}
	}
	sort.Float64s(mags)
	cuts := append([]float64{opts.threshold}, dedupSorted(mags)...)

	// acyclic(k) is monotone: false…false true…true. The last cut removes
	// every edge, so the search always succeeds.
	var searchErr error
	k := sort.Search(len(cuts), func(k int) bool {
		if searchErr != nil {
			return true
		}
		sub, err := newAdjacency(w, cuts[k])
		if err != nil {
			searchErr = err
			return true
		}
		_, err = topoSort(sub, opts)
		if errors.Is(err, ErrCycleDetected) {
			return false
		}
		if err != nil {
			searchErr = err
		}

		return true
	})
	if searchErr != nil {
		return nil, 0, searchErr
	}
	t := cuts[k]

	out, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			v, _ = w.At(i, j)
			if math.Abs(v) > t {
				if err = out.Set(i, j, v); err != nil {
					return nil, 0, err
				}
			}
		}
	}

	return out, t, nil
}

// dedupSorted drops repeated values from an ascending slice in place.
func dedupSorted(s []float64) []float64 {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
