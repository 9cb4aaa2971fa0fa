package trip

import (
	"fmt"
	"time"
)

// UserType rider membership category
type UserType string

const (
	Subscriber UserType = "Subscriber"
	Customer   UserType = "Customer"
)

// Gender of the rider. GenderUnknown means the source had no value for the row
type Gender string

const (
	GenderUnknown Gender = ""
	Male          Gender = "Male"
	Female        Gender = "Female"
)

// Record struct that contains one bicycle rental
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends. Not validated against StartTime
// + Duration: duration of the trip in seconds
// + StartStation: station name in which the trip begins
// + EndStation: station name in which the trip ends
// + UserType: membership category of the rider
// + Gender: gender of the rider, GenderUnknown when absent
// + BirthYear: birth year of the rider, only meaningful if HasBirthYear is true
// + StartMonth, StartWeekday, StartHour: derived from StartTime by NewRecord
type Record struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     UserType  `json:"user_type"`
	Gender       Gender    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	HasBirthYear bool      `json:"has_birth_year"`

	StartMonth   string `json:"start_month"`
	StartWeekday string `json:"start_weekday"`
	StartHour    int    `json:"start_hour"`
}

// NewRecord builds a Record and caches its temporal fields
func NewRecord(startTime time.Time, endTime time.Time, duration float64, startStation string, endStation string, userType UserType) Record {
	return Record{
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
		StartMonth:   startTime.Month().String(),
		StartWeekday: startTime.Weekday().String(),
		StartHour:    startTime.Hour(),
	}
}

// WithGender returns a copy of the record with the given gender
func (r Record) WithGender(gender Gender) Record {
	r.Gender = gender
	return r
}

// WithBirthYear returns a copy of the record with the given birth year
func (r Record) WithBirthYear(year int) Record {
	r.BirthYear = year
	r.HasBirthYear = true
	return r
}

// Trip returns the station pair of the record, e.g. "Canal St to Clark St"
func (r Record) Trip() string {
	return fmt.Sprintf("%s to %s", r.StartStation, r.EndStation)
}
