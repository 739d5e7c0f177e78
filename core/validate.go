// Package core - validation shared by every solver entry point.
//
// Design principles (matching the rest of the module):
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst-case; no hidden allocations.
package core

// ValidateInstance verifies a raw (capacity, weights, values) triple.
//
// Contract:
//   - len(weights) == len(values); n == 0 is allowed (the degenerate
//     empty instance solves to value 0 with an empty selection).
//   - Every weight and value is non-negative.
//   - capacity >= 0.
//
// Complexity: O(n).
func ValidateInstance(capacity int, weights, values []int) error {
	// Stage 1: shape.
	if len(weights) != len(values) {
		return ErrLengthMismatch
	}

	// Stage 2: capacity sign.
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	// Stage 3: element signs.
	var i int
	for i = 0; i < len(weights); i++ {
		if weights[i] < 0 {
			return ErrNegativeWeight
		}
		if values[i] < 0 {
			return ErrNegativeValue
		}
	}

	return nil
}
