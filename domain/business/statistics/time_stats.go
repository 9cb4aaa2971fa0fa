package statistics

import (
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// TimeStats most frequent times of travel
type TimeStats struct {
	MostCommonMonth   Mode[string] `json:"most_common_month"`
	MostCommonWeekday Mode[string] `json:"most_common_weekday"`
	MostCommonHour    Mode[int]    `json:"most_common_hour"`
}

func ComputeTimeStats(ds *dataset.Dataset) TimeStats {
	months := frequency.New(trip.MonthLess)
	weekdays := frequency.New(trip.WeekdayLess)
	hours := frequency.NewOrdered[int]()

	ds.Each(func(record trip.Record) {
		months.Add(record.StartMonth)
		weekdays.Add(record.StartWeekday)
		hours.Add(record.StartHour)
	})

	return TimeStats{
		MostCommonMonth:   modeOf(months),
		MostCommonWeekday: modeOf(weekdays),
		MostCommonHour:    modeOf(hours),
	}
}
