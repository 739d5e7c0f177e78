// Package solver routes a 0/1 knapsack instance to any of the module's
// exact algorithms behind a single Solve signature, and names them
// stably (Algo.String / ParseAlgo) for CSV output and CLI flags.
//
// All algorithms return the same optimal value for the same valid
// input; the selected subset may differ only when several subsets are
// equally optimal.
package solver
