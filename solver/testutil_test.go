package solver_test

import (
	"math/rand"
	"testing"
)

// bruteForce enumerates all 2^n subsets and returns the optimal value.
// It is the oracle for cross-validating every solver; keep n ≤ 20.
func bruteForce(t *testing.T, capacity int, weights, values []int) int {
	t.Helper()

	n := len(weights)
	if n > 20 {
		t.Fatalf("bruteForce oracle limited to n ≤ 20, got %d", n)
	}

	best := 0
	for mask := 0; mask < 1<<uint(n); mask++ {
		wsum, vsum := 0, 0
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				wsum += weights[i]
				vsum += values[i]
			}
		}
		if wsum <= capacity && vsum > best {
			best = vsum
		}
	}

	return best
}

// randomInstance draws a deterministic instance: n items, weights in
// [1,30], values in [1,100] (the generator's ranges), capacity in
// [0,200].
func randomInstance(rng *rand.Rand, n int) (capacity int, weights, values []int) {
	weights = make([]int, n)
	values = make([]int, n)
	for i := 0; i < n; i++ {
		weights[i] = 1 + rng.Intn(30)
		values[i] = 1 + rng.Intn(100)
	}

	return rng.Intn(201), weights, values
}
