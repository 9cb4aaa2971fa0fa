package duration

import (
	"math"
	"testing"

	dataErrors "bikeshare/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  Parts
	}{
		{name: "zero", input: 0, want: Parts{}},
		{name: "ten minutes", input: 600, want: Parts{Minutes: 10}},
		{name: "mean of sample trips", input: 200, want: Parts{Minutes: 3, Seconds: 20}},
		{name: "exactly one day", input: 86400, want: Parts{Days: 1}},
		{name: "every component", input: 90061, want: Parts{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}},
		{name: "fraction is truncated", input: 59.99, want: Parts{Seconds: 59}},
		{name: "fraction below one second", input: 0.7, want: Parts{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecomposeBoundsAndIdentity(t *testing.T) {
	inputs := []float64{1, 59, 60, 3599, 3600, 86399, 86401.5, 123456.789, 9876543}
	for _, input := range inputs {
		parts, err := Decompose(input)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, parts.Days, int64(0))
		assert.True(t, parts.Hours >= 0 && parts.Hours < 24, "hours out of range for %v", input)
		assert.True(t, parts.Minutes >= 0 && parts.Minutes < 60, "minutes out of range for %v", input)
		assert.True(t, parts.Seconds >= 0 && parts.Seconds < 60, "seconds out of range for %v", input)
		assert.Equal(t, int64(math.Floor(input)), parts.TotalSeconds())
	}
}

func TestDecomposeRejectsNegative(t *testing.T) {
	_, err := Decompose(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataErrors.ErrNegativeDuration)
	assert.ErrorIs(t, err, dataErrors.ErrDomain)

	_, err = Decompose(math.NaN())
	assert.ErrorIs(t, err, dataErrors.ErrDomain)
}

func TestDecomposeRejectsValuesOutOfRange(t *testing.T) {
	for _, input := range []float64{math.Inf(1), 1e19, math.Exp2(63)} {
		parts, err := Decompose(input)
		assert.ErrorIs(t, err, dataErrors.ErrDurationTooLarge, "input %v", input)
		assert.ErrorIs(t, err, dataErrors.ErrDomain, "input %v", input)
		assert.Equal(t, Parts{}, parts)
	}

	_, err := Decompose(math.Inf(-1))
	assert.ErrorIs(t, err, dataErrors.ErrNegativeDuration)

	// the largest float64 below 2^63 still decomposes with every part in range
	largest := math.Nextafter(math.Exp2(63), 0)
	parts, err := Decompose(largest)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, parts.Days, int64(0))
	assert.Equal(t, int64(largest), parts.TotalSeconds())
}

func TestPartsString(t *testing.T) {
	assert.Equal(t, "1d 01h 01m 01s", Parts{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}.String())
}
