package distanceaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator(t *testing.T) {
	acc := NewDistanceAccumulator()

	_, ok := acc.GetAverageDistance()
	assert.False(t, ok)

	acc.UpdateAccumulator(1.5)
	acc.UpdateAccumulator(2.5)
	acc.Skip()

	average, ok := acc.GetAverageDistance()
	assert.True(t, ok)
	assert.InDelta(t, 2.0, average, 1e-9)
	assert.Equal(t, 2, acc.Counter)
	assert.Equal(t, 1, acc.Skipped)
}
