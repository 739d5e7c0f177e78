package core_test

import (
	"testing"

	"github.com/katalvlaran/knapx/core"
	"github.com/stretchr/testify/assert"
)

// TestValidateInstance_Valid accepts a well-formed instance.
func TestValidateInstance_Valid(t *testing.T) {
	err := core.ValidateInstance(10, []int{2, 3, 4, 5}, []int{3, 4, 5, 6})
	assert.NoError(t, err)
}

// TestValidateInstance_EmptyAllowed accepts the zero-item instance:
// it degenerates to value 0 with an empty selection, not an error.
func TestValidateInstance_EmptyAllowed(t *testing.T) {
	err := core.ValidateInstance(10, nil, nil)
	assert.NoError(t, err)
}

// TestValidateInstance_LengthMismatch rejects unequal array lengths.
func TestValidateInstance_LengthMismatch(t *testing.T) {
	err := core.ValidateInstance(10, []int{1, 2}, []int{1})
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
}

// TestValidateInstance_NegativeCapacity rejects capacity < 0.
func TestValidateInstance_NegativeCapacity(t *testing.T) {
	err := core.ValidateInstance(-1, []int{1}, []int{1})
	assert.ErrorIs(t, err, core.ErrNegativeCapacity)
}

// TestValidateInstance_NegativeWeight rejects any negative weight.
func TestValidateInstance_NegativeWeight(t *testing.T) {
	err := core.ValidateInstance(10, []int{1, -2}, []int{1, 2})
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

// TestValidateInstance_NegativeValue rejects any negative value.
func TestValidateInstance_NegativeValue(t *testing.T) {
	err := core.ValidateInstance(10, []int{1, 2}, []int{1, -2})
	assert.ErrorIs(t, err, core.ErrNegativeValue)
}
