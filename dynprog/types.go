// Package dynprog defines options and memory modes for the
// dynamic-programming knapsack solver.
package dynprog

import "errors"

// Sentinel errors for the DP solver. Input-shape violations surface the
// core sentinels unchanged (see core.ValidateInstance).
var (
	// ErrUnknownMemoryMode indicates an Options.MemoryMode outside the
	// declared enum values.
	ErrUnknownMemoryMode = errors.New("dynprog: unknown memory mode")
)

// MemoryMode controls how the solver stores its DP table.
//
//   - FullTable  — keep the entire (n+1)×(W+1) value table in memory.
//     Reconstruction walks the table itself, comparing row i against
//     row i-1. Memory: O(n·W).
//
//   - RollingRow — keep a single (W+1) value row, updated in place per
//     item, plus an (n+1)×(W+1) boolean chosen-grid recording which
//     cells an item improved. Reconstruction walks the chosen-grid.
//     The value surface shrinks to O(W); the grid stays O(n·W) bits.
//
// Both modes return identical optimal values for every instance;
// selections may differ only between equally optimal subsets.
type MemoryMode int

const (
	// FullTable mode: full 2D table, trace by value comparison.
	FullTable MemoryMode = iota

	// RollingRow mode: 1D rolling row + auxiliary chosen-grid trace.
	RollingRow
)

// Options configures the DP solver.
//
// Example:
//
//	opts := dynprog.DefaultOptions()
//	opts.MemoryMode = dynprog.RollingRow
//	res, err := dynprog.Solve(10, weights, values, &opts)
type Options struct {
	// MemoryMode selects FullTable or RollingRow storage.
	MemoryMode MemoryMode
}

// DefaultOptions returns Options with the FullTable mode.
func DefaultOptions() Options {
	return Options{MemoryMode: FullTable}
}
