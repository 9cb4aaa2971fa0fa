package filter

import (
	"fmt"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// All disables the month or weekday filter
const All = "All"

// Criteria time window to analyze. Month and Weekday hold an English name or All.
type Criteria struct {
	Month   string `json:"month"`
	Weekday string `json:"weekday"`
}

// NoFilter criteria that keeps every record
var NoFilter = Criteria{Month: All, Weekday: All}

// Apply returns a new Dataset with the records that started in month and on weekday.
// Unrecognized names match no record. The input dataset is never modified.
func Apply(ds *dataset.Dataset, month string, weekday string) *dataset.Dataset {
	return Criteria{Month: month, Weekday: weekday}.Apply(ds)
}

func (c Criteria) Apply(ds *dataset.Dataset) *dataset.Dataset {
	return ds.Where(c.Matches)
}

// Matches reports whether the record falls inside the criteria
func (c Criteria) Matches(record trip.Record) bool {
	if c.Month != All && record.StartMonth != c.Month {
		return false
	}
	if c.Weekday != All && record.StartWeekday != c.Weekday {
		return false
	}
	return true
}

// ParseCriteria validates raw month and day input, e.g. " june ", "ALL".
// allowedMonths limits the accepted months; every month is accepted if it is empty.
// Returns an error wrapping ErrDomain when a value is not recognized, so the caller can ask again.
func ParseCriteria(month string, day string, allowedMonths []string) (Criteria, error) {
	normalizedMonth := utils.NormalizeName(month)
	normalizedDay := utils.NormalizeName(day)

	if normalizedMonth != All {
		validMonth := trip.IsMonth(normalizedMonth)
		if validMonth && len(allowedMonths) > 0 {
			validMonth = utils.ContainsString(normalizedMonth, allowedMonths)
		}
		if !validMonth {
			return Criteria{}, fmt.Errorf("%w: %q", dataErrors.ErrInvalidMonth, month)
		}
	}

	if normalizedDay != All && !trip.IsWeekday(normalizedDay) {
		return Criteria{}, fmt.Errorf("%w: %q", dataErrors.ErrInvalidWeekday, day)
	}

	return Criteria{Month: normalizedMonth, Weekday: normalizedDay}, nil
}

// AcceptedMonths returns the month names ParseCriteria accepts for allowedMonths
func AcceptedMonths(allowedMonths []string) []string {
	if len(allowedMonths) > 0 {
		return allowedMonths
	}
	return trip.MonthNames()
}

// AcceptedWeekdays returns the weekday names ParseCriteria accepts
func AcceptedWeekdays() []string {
	return trip.WeekdayNames()
}

func (c Criteria) String() string {
	return fmt.Sprintf("[month: %s][weekday: %s]", c.Month, c.Weekday)
}
