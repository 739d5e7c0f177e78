// Package branchbound solves the 0/1 knapsack problem by best-first
// branch-and-bound with a fractional-relaxation upper bound.
//
// ✨ Key features:
//   - exact optimum; the frontier is a max-heap on each node's bound
//   - LP-relaxation bound: greedy ratio-ordered fill + one fractional item
//   - deterministic pop order — documented tie-break chain on equal bounds
//   - compact bitset selection sets, one copy per live frontier node
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapx/branchbound"
//
//	res, err := branchbound.Solve(10, []int{2, 3, 4, 5}, []int{3, 4, 5, 6})
//	// res.Value == 13, res.Picked == [0 1 3]
//
// Best-first order reaches strong incumbents with fewer expansions than
// plain depth-first search on instances with uneven value density, at
// the cost of queue memory proportional to the live frontier.
package branchbound
