package core

import "errors"

// Sentinel errors for instance validation.
// Solver packages return these unchanged; no solver wraps or redefines them.
var (
	// ErrLengthMismatch is returned when weights and values differ in length.
	ErrLengthMismatch = errors.New("core: weights and values must have equal length")

	// ErrNegativeWeight is returned when any item weight is negative.
	ErrNegativeWeight = errors.New("core: item weights must be non-negative")

	// ErrNegativeValue is returned when any item value is negative.
	ErrNegativeValue = errors.New("core: item values must be non-negative")

	// ErrNegativeCapacity is returned when the capacity is negative.
	ErrNegativeCapacity = errors.New("core: capacity must be non-negative")
)

// Item is the auxiliary per-item record built from the caller's parallel
// weight/value arrays. Immutable once constructed; it exists only for the
// duration of one solver call.
//
// Ratio is Value/Weight. For a zero-weight item Ratio is +Inf, so such
// items sort first under ByRatioDesc and are always consumed whole by the
// greedy bound fill (see branchbound). No solver divides by Weight outside
// Item construction, so the artifact never reaches a comparison as NaN.
type Item struct {
	// Weight is the item's weight (non-negative).
	Weight int

	// Value is the item's profit contribution (non-negative).
	Value int

	// Ratio is Value/Weight; +Inf when Weight == 0.
	Ratio float64

	// Index is the item's position in the caller's input arrays.
	Index int
}

// Result is the output contract shared by all solvers.
type Result struct {
	// Value is the optimal total value.
	Value int

	// Picked holds the selected original indices, sorted ascending,
	// with no duplicates. The weight sum over Picked never exceeds the
	// capacity, and the value sum equals Value exactly.
	Picked []int
}
