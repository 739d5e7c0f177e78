// Package solver - unified dispatcher for the knapsack solvers.
//
// This file provides the canonical entry point to run any of the exact
// strategies behind one signature:
//
//   - Solve: validate the raw instance once, then route to the requested
//     algorithm (Backtracking / BranchAndBound / DynamicProgramming /
//     DynamicProgrammingRolling).
//
// Design principles:
//   - Deterministic: every routed solver has documented tie-breaks.
//   - Strict sentinels: only errors from core, dynprog, or this file.
//   - One contract: all algorithms return the same optimal value for the
//     same valid input; selections may differ only between equally
//     optimal subsets.
package solver

import (
	"errors"

	"github.com/katalvlaran/knapx/backtrack"
	"github.com/katalvlaran/knapx/branchbound"
	"github.com/katalvlaran/knapx/core"
	"github.com/katalvlaran/knapx/dynprog"
)

// ErrUnsupportedAlgorithm indicates an Algo outside the declared enum.
var ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

// Algo selects a solving strategy.
type Algo int

const (
	// Backtracking: pruned depth-first search (backtrack package).
	Backtracking Algo = iota

	// BranchAndBound: best-first search with fractional-relaxation
	// bounding (branchbound package).
	BranchAndBound

	// DynamicProgramming: full (n+1)×(W+1) table (dynprog, FullTable).
	DynamicProgramming

	// DynamicProgrammingRolling: rolling row + chosen-grid trace
	// (dynprog, RollingRow).
	DynamicProgrammingRolling
)

// String returns the stable name used in CSV output and CLI flags.
func (a Algo) String() string {
	switch a {
	case Backtracking:
		return "backtracking"
	case BranchAndBound:
		return "branch_and_bound"
	case DynamicProgramming:
		return "dynamic_programming"
	case DynamicProgrammingRolling:
		return "dynamic_programming_rolling"
	default:
		return "unknown"
	}
}

// ParseAlgo maps a stable name (see Algo.String) back to its Algo.
func ParseAlgo(name string) (Algo, error) {
	switch name {
	case "backtracking":
		return Backtracking, nil
	case "branch_and_bound":
		return BranchAndBound, nil
	case "dynamic_programming":
		return DynamicProgramming, nil
	case "dynamic_programming_rolling":
		return DynamicProgrammingRolling, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Algos lists every supported algorithm in a stable order.
func Algos() []Algo {
	return []Algo{
		Backtracking,
		BranchAndBound,
		DynamicProgramming,
		DynamicProgrammingRolling,
	}
}

// Solve validates the instance and routes to the chosen algorithm.
//
// Contracts:
//   - len(weights) == len(values); all entries and capacity non-negative
//     (core.ValidateInstance sentinels otherwise).
//   - The returned Picked indices are ascending, distinct, feasible, and
//     their value sum equals Value.
//
// Complexity: per routed algorithm — O(2ⁿ) worst case for the search
// solvers, O(n·W) for the DP modes.
func Solve(algo Algo, capacity int, weights, values []int) (core.Result, error) {
	// Stage 1 - unified validation (routed solvers re-check cheaply).
	if err := core.ValidateInstance(capacity, weights, values); err != nil {
		return core.Result{}, err
	}

	// Stage 2 - route by algorithm.
	switch algo {
	case Backtracking:
		return backtrack.Solve(capacity, weights, values)

	case BranchAndBound:
		return branchbound.Solve(capacity, weights, values)

	case DynamicProgramming:
		opts := dynprog.DefaultOptions()
		opts.MemoryMode = dynprog.FullTable

		return dynprog.Solve(capacity, weights, values, &opts)

	case DynamicProgrammingRolling:
		opts := dynprog.DefaultOptions()
		opts.MemoryMode = dynprog.RollingRow

		return dynprog.Solve(capacity, weights, values, &opts)

	default:
		return core.Result{}, ErrUnsupportedAlgorithm
	}
}
