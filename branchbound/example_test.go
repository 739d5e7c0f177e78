package branchbound_test

import (
	"fmt"

	"github.com/katalvlaran/knapx/branchbound"
)

// ExampleSolve runs the best-first branch-and-bound on a small instance.
func ExampleSolve() {
	res, err := branchbound.Solve(10, []int{2, 3, 4, 5}, []int{3, 4, 5, 6})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("value:", res.Value)
	fmt.Println("picked:", res.Picked)
	// Output:
	// value: 13
	// picked: [0 1 3]
}
