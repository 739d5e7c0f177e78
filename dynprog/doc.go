// Package dynprog solves the 0/1 knapsack problem by dynamic
// programming, with a choice between a full 2D table and a rolling-row
// formulation.
//
// ✨ Key features:
//   - exact optimum in O(n·W) time, either mode
//   - FullTable: classic (n+1)×(W+1) table, trace by row comparison
//   - RollingRow: single value row + boolean chosen-grid trace
//     (choose via Options.MemoryMode)
//   - identical optimal value in both modes on every instance
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapx/dynprog"
//
//	opts := dynprog.DefaultOptions()
//	opts.MemoryMode = dynprog.RollingRow
//
//	res, err := dynprog.Solve(10, []int{2, 3, 4, 5}, []int{3, 4, 5, 6}, &opts)
//	// res.Value == 13, res.Picked == [0 1 3]
//
// Performance:
//
//   - Time:   O(n·W)
//   - Memory: O(n·W) ints (FullTable) or O(W) ints + O(n·W) bools (RollingRow)
//
// See example_test.go for runnable examples.
package dynprog
