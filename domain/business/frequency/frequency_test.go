package frequency

import (
	"testing"

	"bikeshare/domain/entities/trip"

	"github.com/stretchr/testify/assert"
)

func TestModeBreaksTiesWithSmallestValue(t *testing.T) {
	table := NewOrdered[int]()
	for _, v := range []int{3, 1, 1, 3} {
		table.Add(v)
	}

	value, count, ok := table.Mode()

	assert.True(t, ok)
	assert.Equal(t, 1, value)
	assert.Equal(t, 2, count)
}

func TestModePicksMostFrequent(t *testing.T) {
	table := NewOrdered[string]()
	for _, v := range []string{"b", "a", "c", "c", "b", "c"} {
		table.Add(v)
	}

	value, count, ok := table.Mode()

	assert.True(t, ok)
	assert.Equal(t, "c", value)
	assert.Equal(t, 3, count)
}

func TestModeOnEmptyTable(t *testing.T) {
	value, count, ok := NewOrdered[string]().Mode()

	assert.False(t, ok)
	assert.Equal(t, "", value)
	assert.Equal(t, 0, count)
}

func TestModeWithCalendarOrder(t *testing.T) {
	// alphabetically April < March, in calendar order March comes first
	table := New(trip.MonthLess)
	for _, v := range []string{"April", "March", "April", "March"} {
		table.Add(v)
	}

	value, _, _ := table.Mode()
	assert.Equal(t, "March", value)

	weekdays := New(trip.WeekdayLess)
	for _, v := range []string{"Saturday", "Sunday"} {
		weekdays.Add(v)
	}
	value, _, _ = weekdays.Mode()
	assert.Equal(t, "Sunday", value)
}
