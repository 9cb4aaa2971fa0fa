package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordDerivesTemporalFields(t *testing.T) {
	start := time.Date(2017, time.June, 23, 15, 9, 32, 0, time.UTC)
	record := NewRecord(start, start.Add(321*time.Second), 321, "Wood St & Hubbard St", "Damen Ave & Chicago Ave", Subscriber)

	assert.Equal(t, "June", record.StartMonth)
	assert.Equal(t, "Friday", record.StartWeekday)
	assert.Equal(t, 15, record.StartHour)
	assert.Equal(t, "Wood St & Hubbard St to Damen Ave & Chicago Ave", record.Trip())
	assert.Equal(t, GenderUnknown, record.Gender)
	assert.False(t, record.HasBirthYear)
}

func TestWithDemographicsDoesNotMutate(t *testing.T) {
	start := time.Date(2017, time.January, 1, 0, 7, 57, 0, time.UTC)
	base := NewRecord(start, start, 10, "A", "B", Customer)

	withBoth := base.WithGender(Female).WithBirthYear(1992)

	assert.Equal(t, Female, withBoth.Gender)
	assert.Equal(t, 1992, withBoth.BirthYear)
	assert.True(t, withBoth.HasBirthYear)
	assert.Equal(t, GenderUnknown, base.Gender)
	assert.False(t, base.HasBirthYear)
}

func TestCalendarOrdering(t *testing.T) {
	assert.True(t, MonthLess("January", "February"))
	assert.False(t, MonthLess("March", "February"))
	assert.True(t, MonthLess("December", "Smarch"))
	assert.True(t, WeekdayLess("Sunday", "Monday"))
	assert.True(t, WeekdayLess("Friday", "Saturday"))
	assert.False(t, WeekdayLess("Saturday", "Sunday"))

	assert.Len(t, MonthNames(), 12)
	assert.Equal(t, "Sunday", WeekdayNames()[0])
	assert.True(t, IsMonth("May"))
	assert.False(t, IsMonth("may"))
	assert.True(t, IsWeekday("Tuesday"))
	assert.False(t, IsWeekday("All"))
}
