package dynprog

import "github.com/katalvlaran/knapx/core"

// Solve — 0/1 knapsack by dynamic programming.
//
// Description:
//
//	The classic table formulation: best[i][w] is the best value using
//	only the first i items under capacity w. Items are processed in the
//	caller's input order — the recurrence is index-order-invariant, so
//	no ratio sort is needed (unlike the search solvers).
//
// Algorithm Outline (FullTable):
//  1. Allocate T of size (n+1)×(W+1); T[0][*] = 0.
//  2. For i = 1..n, w = 0..W:
//     T[i][w] = T[i-1][w]                                (exclude)
//     if weight[i-1] ≤ w:
//     T[i][w] = max(T[i][w], T[i-1][w-weight[i-1]] + value[i-1])
//  3. Optimum = T[n][W].
//  4. Reconstruct: walk i = n..1 at w; whenever T[i][w] ≠ T[i-1][w],
//     item i-1 was included — record it and reduce w by its weight.
//
// Algorithm Outline (RollingRow):
//  1. Allocate row of size W+1 (zeroed) and chosen (n+1)×(W+1) bools.
//  2. For i = 1..n, w = W down to weight[i-1] — descending, so each
//     item contributes at most once per pass (ascending order would
//     reuse the item's freshly updated cell, turning 0/1 into the
//     unbounded variant):
//     if value[i-1] + row[w-weight[i-1]] > row[w]:
//     row[w] = value[i-1] + row[w-weight[i-1]]; chosen[i][w] = true
//  3. Optimum = row[W].
//  4. Reconstruct: walk i = n..1 at w; if chosen[i][w], record item
//     i-1 and reduce w by its weight.
//
// Complexity:
//
//	Time   = O(n·W) either mode
//	Memory = O(n·W) values (FullTable) or O(W) values + O(n·W) bools (RollingRow)
//
// Errors:
//   - core.ValidateInstance sentinels for malformed input.
//   - ErrUnknownMemoryMode for an out-of-range Options.MemoryMode.
//
// A nil opts selects DefaultOptions. The returned Picked indices are
// sorted ascending, matching the module-wide Result contract.
func Solve(capacity int, weights, values []int, opts *Options) (core.Result, error) {
	if err := core.ValidateInstance(capacity, weights, values); err != nil {
		return core.Result{}, err
	}

	mode := FullTable
	if opts != nil {
		mode = opts.MemoryMode
	}

	switch mode {
	case FullTable:
		return solveFullTable(capacity, weights, values), nil
	case RollingRow:
		return solveRollingRow(capacity, weights, values), nil
	default:
		return core.Result{}, ErrUnknownMemoryMode
	}
}

// solveFullTable fills the full (n+1)×(W+1) table and traces the
// selection by comparing adjacent rows.
func solveFullTable(capacity int, weights, values []int) core.Result {
	var n int
	n = len(weights)

	// T[i][w]: best value using items 1..i under capacity w.
	table := make([][]int, n+1)

	var i, w int
	for i = 0; i <= n; i++ {
		table[i] = make([]int, capacity+1)
	}

	for i = 1; i <= n; i++ {
		for w = 0; w <= capacity; w++ {
			// Exclude item i.
			table[i][w] = table[i-1][w]

			// Include item i if it fits at this capacity level.
			if weights[i-1] <= w {
				if cand := table[i-1][w-weights[i-1]] + values[i-1]; cand > table[i][w] {
					table[i][w] = cand
				}
			}
		}
	}

	// Backward trace: a row change at fixed w means item i-1 was taken.
	picked := make([]int, 0, n)
	w = capacity
	for i = n; i > 0; i-- {
		if table[i][w] != table[i-1][w] {
			picked = append(picked, i-1)
			w -= weights[i-1]
		}
	}
	reverseInts(picked) // trace discovers indices descending; contract is ascending

	return core.Result{Value: table[n][capacity], Picked: picked}
}

// solveRollingRow keeps one value row plus a chosen-grid for the trace.
func solveRollingRow(capacity int, weights, values []int) core.Result {
	var n int
	n = len(weights)

	row := make([]int, capacity+1)
	chosen := make([][]bool, n+1)

	var i, w int
	for i = 0; i <= n; i++ {
		chosen[i] = make([]bool, capacity+1)
	}

	for i = 1; i <= n; i++ {
		// Descending w guards the 0/1 (use-at-most-once) property.
		for w = capacity; w >= weights[i-1]; w-- {
			if cand := values[i-1] + row[w-weights[i-1]]; cand > row[w] {
				row[w] = cand
				chosen[i][w] = true
			}
		}
	}

	picked := make([]int, 0, n)
	w = capacity
	for i = n; i > 0; i-- {
		if chosen[i][w] {
			picked = append(picked, i-1)
			w -= weights[i-1]
		}
	}
	reverseInts(picked)

	return core.Result{Value: row[capacity], Picked: picked}
}

// reverseInts reverses a in place.
func reverseInts(a []int) {
	for l, r := 0, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
}
