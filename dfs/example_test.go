package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/dagloss/dfs"
	"github.com/katalvlaran/dagloss/matrix"
)

// ExampleTopologicalSort orders a small learned adjacency after pruning
// weights at or below 0.1.
func ExampleTopologicalSort() {
	w, _ := matrix.NewDenseRows([][]float64{
		{0, 0, 0},
		{0.8, 0, 0.05},
		{-1.2, 0, 0},
	})
	order, err := dfs.TopologicalSort(w, dfs.WithThreshold(0.1))
	fmt.Println(order, err)
	// Output: [2 1 0] <nil>
}

// ExampleProjectToDAG removes the weakest edge of a 2-cycle.
func ExampleProjectToDAG() {
	w, _ := matrix.NewDenseRows([][]float64{
		{0, 0.9},
		{0.3, 0},
	})
	out, thr, _ := dfs.ProjectToDAG(w)
	fmt.Println(thr)
	fmt.Print(out)
	// Output:
	// 0.3
	// [0, 0.9]
	// [0, 0]
}

// ExampleDetectCycles lists a self-loop and a 3-cycle.
func ExampleDetectCycles() {
	w, _ := matrix.NewDenseRows([][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
	})
	has, cycles, _ := dfs.DetectCycles(w)
	fmt.Println(has, cycles)
	// Output: true [[0 1 2 0] [3 3]]
}
