package branchbound_test

import (
	"testing"

	"github.com/katalvlaran/knapx/branchbound"
	"github.com/katalvlaran/knapx/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_KnownOptimum verifies the canonical scenario: capacity 10,
// weights [2,3,4,5], values [3,4,5,6] ⇒ value 13, picks {0,1,3}.
func TestSolve_KnownOptimum(t *testing.T) {
	res, err := branchbound.Solve(10, []int{2, 3, 4, 5}, []int{3, 4, 5, 6})

	require.NoError(t, err)
	assert.Equal(t, 13, res.Value)
	assert.Equal(t, []int{0, 1, 3}, res.Picked)
}

// TestSolve_EmptyInstance verifies the zero-item degenerate case: the
// root bound is 0, nothing enters the queue, the empty incumbent wins.
func TestSolve_EmptyInstance(t *testing.T) {
	res, err := branchbound.Solve(9, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Value)
	assert.Empty(t, res.Picked)
}

// TestSolve_ZeroCapacity verifies capacity 0 ⇒ (0, empty).
func TestSolve_ZeroCapacity(t *testing.T) {
	res, err := branchbound.Solve(0, []int{2, 3}, []int{5, 7})

	require.NoError(t, err)
	assert.Equal(t, 0, res.Value)
	assert.Empty(t, res.Picked)
}

// TestSolve_AllItemsTooHeavy verifies the all-infeasible instance.
func TestSolve_AllItemsTooHeavy(t *testing.T) {
	res, err := branchbound.Solve(2, []int{3, 4}, []int{100, 200})

	require.NoError(t, err)
	assert.Equal(t, 0, res.Value)
	assert.Empty(t, res.Picked)
}

// TestSolve_SingleItemFits verifies the single-item instance.
func TestSolve_SingleItemFits(t *testing.T) {
	res, err := branchbound.Solve(6, []int{6}, []int{23})

	require.NoError(t, err)
	assert.Equal(t, 23, res.Value)
	assert.Equal(t, []int{0}, res.Picked)
}

// TestSolve_IncludeChildCompletesSolution exercises the generation-time
// incumbent site: the optimum is completed by an "include" child created
// at the final level, whose bound equals its profit — the push filter
// would reject it, so only the generation-time update can commit it
// before its sibling branch is filtered.
func TestSolve_IncludeChildCompletesSolution(t *testing.T) {
	// Two items; the optimum takes both, so the winning node is the
	// include child at level n in the only surviving branch.
	res, err := branchbound.Solve(10, []int{4, 6}, []int{8, 12})

	require.NoError(t, err)
	assert.Equal(t, 20, res.Value)
	assert.Equal(t, []int{0, 1}, res.Picked)
}

// TestSolve_PickedSortedAndFeasible verifies the Result invariants on a
// larger instance.
func TestSolve_PickedSortedAndFeasible(t *testing.T) {
	weights := []int{7, 2, 9, 4, 4, 1, 3, 8}
	values := []int{9, 4, 11, 6, 5, 1, 5, 10}
	const capacity = 15

	res, err := branchbound.Solve(capacity, weights, values)
	require.NoError(t, err)

	wsum, vsum := 0, 0
	for i, idx := range res.Picked {
		if i > 0 {
			assert.Greater(t, idx, res.Picked[i-1], "indices must be strictly ascending")
		}
		wsum += weights[idx]
		vsum += values[idx]
	}
	assert.LessOrEqual(t, wsum, capacity)
	assert.Equal(t, res.Value, vsum)
}

// TestSolve_ZeroWeightItems verifies the +Inf-ratio policy end to end:
// weightless items sort first, are consumed whole by the bound fill, and
// appear in the optimum whenever their value is positive.
func TestSolve_ZeroWeightItems(t *testing.T) {
	res, err := branchbound.Solve(3, []int{0, 3, 2}, []int{5, 4, 3})

	require.NoError(t, err)
	assert.Equal(t, 9, res.Value)
	assert.Equal(t, []int{0, 1}, res.Picked)
}

// TestSolve_EqualRatioItems verifies determinism under heavy ratio ties:
// repeated runs must return the identical selection.
func TestSolve_EqualRatioItems(t *testing.T) {
	weights := []int{2, 4, 2, 4, 2}
	values := []int{4, 8, 4, 8, 4}

	first, err := branchbound.Solve(8, weights, values)
	require.NoError(t, err)
	assert.Equal(t, 16, first.Value)

	for run := 0; run < 5; run++ {
		again, err := branchbound.Solve(8, weights, values)
		require.NoError(t, err)
		assert.Equal(t, first.Picked, again.Picked, "pop order must be reproducible")
	}
}

// TestSolve_InvalidInstance surfaces the core validation sentinels.
func TestSolve_InvalidInstance(t *testing.T) {
	_, err := branchbound.Solve(10, []int{1, 2}, []int{1})
	assert.ErrorIs(t, err, core.ErrLengthMismatch)

	_, err = branchbound.Solve(10, []int{1}, []int{-1})
	assert.ErrorIs(t, err, core.ErrNegativeValue)
}
