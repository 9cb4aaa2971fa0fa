package duration

import (
	"fmt"
	"math"

	dataErrors "bikeshare/domain/errors"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Parts is a duration split into whole calendar components
// + Days: unbounded
// + Hours: 0-23
// + Minutes: 0-59
// + Seconds: 0-59
type Parts struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// Decompose converts totalSeconds into days, hours, minutes and seconds. The fractional
// part of the input is truncated, so the parts always add up to floor(totalSeconds).
func Decompose(totalSeconds float64) (Parts, error) {
	if math.IsNaN(totalSeconds) || totalSeconds < 0 {
		return Parts{}, fmt.Errorf("%w: %v", dataErrors.ErrNegativeDuration, totalSeconds)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which no longer fits in an int64
	if math.IsInf(totalSeconds, 1) || totalSeconds >= math.MaxInt64 {
		return Parts{}, fmt.Errorf("%w: %v", dataErrors.ErrDurationTooLarge, totalSeconds)
	}

	remaining := int64(math.Floor(totalSeconds))

	days := remaining / secondsPerDay
	remaining %= secondsPerDay

	hours := remaining / secondsPerHour
	remaining %= secondsPerHour

	minutes := remaining / secondsPerMinute
	remaining %= secondsPerMinute

	return Parts{
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: remaining,
	}, nil
}

// TotalSeconds reassembles the parts into whole seconds
func (p Parts) TotalSeconds() int64 {
	return p.Days*secondsPerDay + p.Hours*secondsPerHour + p.Minutes*secondsPerMinute + p.Seconds
}

func (p Parts) String() string {
	return fmt.Sprintf("%dd %02dh %02dm %02ds", p.Days, p.Hours, p.Minutes, p.Seconds)
}
