// Package backtrack — pruned depth-first search for the 0/1 knapsack.
//
// Solve enumerates include/exclude decisions over the ratio-sorted item
// list, depth-first, with two prunes evaluated in a fixed order at every
// node:
//
//  1. Value bound: if profit + sum of all remaining item values cannot
//     beat the incumbent, the subtree is dead — the whole-item sum is an
//     over-estimate of any feasible subset of those items, so no optimal
//     completion is ever cut.
//  2. Capacity: if the accumulated weight already exceeds the capacity,
//     an infeasible choice was made one level up — abandon the branch.
//
// Branching order: "include" before "exclude". Combined with the
// ratio-descending item order this finds strong incumbents early, which
// feeds back into prune 1 for the rest of the search.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes (exact search); the two prunes plus the
//     sort order keep practical instances far below that.
//   - Per node: O(1) prune checks and state updates.
//   - Memory: O(n) recursion depth + O(n) for the two selection buffers.
//
// Errors: core.ValidateInstance sentinels for malformed input; valid
// input never fails.
package backtrack

import (
	"sort"

	"github.com/katalvlaran/knapx/core"
)

// dfsEngine holds all search data for one Solve invocation.
// A dedicated engine struct (instead of closures) keeps hot-path state
// predictable and the incumbent local to one call's lifetime.
type dfsEngine struct {
	capacity int
	items    []core.Item // ratio-descending order
	n        int

	// Current path state: original indices chosen so far.
	current []int

	// Incumbent: best complete feasible solution found so far.
	bestValue  int
	bestPicked []int
}

// dfs explores the decision at depth with the given accumulated weight,
// profit, and the value sum of all items at depth and beyond.
func (e *dfsEngine) dfs(depth, weight, profit, remaining int) {
	// Prune 1: even taking every remaining item whole cannot beat the incumbent.
	if profit+remaining <= e.bestValue {
		return
	}

	// Prune 2: the branch already describes an infeasible choice.
	if weight > e.capacity {
		return
	}

	// Base case: all items decided; snapshot a strictly better incumbent.
	if depth == e.n {
		if profit > e.bestValue {
			e.bestValue = profit
			e.bestPicked = append(e.bestPicked[:0], e.current...)
		}

		return
	}

	it := e.items[depth]

	// Include first (only if it fits): strong incumbents early.
	if weight+it.Weight <= e.capacity {
		e.current = append(e.current, it.Index)
		e.dfs(depth+1, weight+it.Weight, profit+it.Value, remaining-it.Value)
		e.current = e.current[:len(e.current)-1]
	}

	// Exclude: the item's value leaves the remaining pool either way.
	e.dfs(depth+1, weight, profit, remaining-it.Value)
}

// Solve runs the pruned depth-first search and returns the optimum.
//
// The incumbent starts at value 0 with an empty selection, which is
// itself feasible — so the degenerate cases (no items, zero capacity,
// every item too heavy) fall out of the search naturally.
func Solve(capacity int, weights, values []int) (core.Result, error) {
	if err := core.ValidateInstance(capacity, weights, values); err != nil {
		return core.Result{}, err
	}

	var e dfsEngine
	e.capacity = capacity
	e.items = core.RatioItems(weights, values)
	e.n = len(e.items)
	e.current = make([]int, 0, e.n)
	e.bestPicked = make([]int, 0, e.n)

	// Value sum of the full item pool seeds the value-bound prune.
	var total int
	for _, it := range e.items {
		total += it.Value
	}

	e.dfs(0, 0, 0, total)

	// The path records items in ratio order; the contract wants ascending indices.
	sort.Ints(e.bestPicked)

	return core.Result{Value: e.bestValue, Picked: e.bestPicked}, nil
}
