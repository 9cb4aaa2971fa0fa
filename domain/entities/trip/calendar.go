package trip

import "time"

var (
	monthIndex   = make(map[string]int, 12)
	weekdayIndex = make(map[string]int, 7)
)

func init() {
	for m := time.January; m <= time.December; m++ {
		monthIndex[m.String()] = int(m)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekdayIndex[d.String()] = int(d)
	}
}

// MonthNames returns the twelve English month names in calendar order
func MonthNames() []string {
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, m.String())
	}
	return names
}

// WeekdayNames returns the English weekday names from Sunday to Saturday
func WeekdayNames() []string {
	names := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		names = append(names, d.String())
	}
	return names
}

// IsMonth reports whether name is one of the twelve month names
func IsMonth(name string) bool {
	_, ok := monthIndex[name]
	return ok
}

// IsWeekday reports whether name is one of the seven weekday names
func IsWeekday(name string) bool {
	_, ok := weekdayIndex[name]
	return ok
}

// MonthLess orders month names by calendar position. Unknown names sort last, alphabetically.
func MonthLess(a string, b string) bool {
	return calendarLess(monthIndex, a, b)
}

// WeekdayLess orders weekday names from Sunday to Saturday. Unknown names sort last, alphabetically.
func WeekdayLess(a string, b string) bool {
	return calendarLess(weekdayIndex, a, b)
}

func calendarLess(index map[string]int, a string, b string) bool {
	ia, okA := index[a]
	ib, okB := index[b]
	switch {
	case okA && okB:
		return ia < ib
	case okA != okB:
		return okA
	default:
		return a < b
	}
}
