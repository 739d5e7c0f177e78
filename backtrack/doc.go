// Package backtrack solves the 0/1 knapsack problem by exhaustive
// depth-first search with value-bound and capacity pruning.
//
// ✨ Key features:
//   - exact optimum; worst case O(2ⁿ), heavily pruned in practice
//   - include-before-exclude branching over ratio-sorted items
//   - O(n) memory beyond the item list — no tables, no queues
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapx/backtrack"
//
//	res, err := backtrack.Solve(10, []int{2, 3, 4, 5}, []int{3, 4, 5, 6})
//	// res.Value == 13, res.Picked == [0 1 3]
//
// Prefer dynprog for large n with moderate capacity; prefer backtrack
// when capacity is huge but n is small.
package backtrack
