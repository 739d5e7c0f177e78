package solver_test

import (
	"fmt"

	"github.com/katalvlaran/knapx/solver"
)

// ExampleSolve routes one instance through every algorithm; all four
// report the identical optimal value.
func ExampleSolve() {
	weights := []int{2, 3, 4, 5}
	values := []int{3, 4, 5, 6}

	for _, algo := range solver.Algos() {
		res, err := solver.Solve(algo, 10, weights, values)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: value=%d picked=%v\n", algo, res.Value, res.Picked)
	}
	// Output:
	// backtracking: value=13 picked=[0 1 3]
	// branch_and_bound: value=13 picked=[0 1 3]
	// dynamic_programming: value=13 picked=[0 1 3]
	// dynamic_programming_rolling: value=13 picked=[0 1 3]
}
