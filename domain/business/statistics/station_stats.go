package statistics

import (
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// StationStats most popular stations and trip.
// MostCommonTrip is the mode of the "start to end" pair, not the pair of independent modes.
type StationStats struct {
	MostCommonStart Mode[string] `json:"most_common_start"`
	MostCommonEnd   Mode[string] `json:"most_common_end"`
	MostCommonTrip  Mode[string] `json:"most_common_trip"`
}

func ComputeStationStats(ds *dataset.Dataset) StationStats {
	starts := frequency.NewOrdered[string]()
	ends := frequency.NewOrdered[string]()
	trips := frequency.NewOrdered[string]()

	ds.Each(func(record trip.Record) {
		starts.Add(record.StartStation)
		ends.Add(record.EndStation)
		trips.Add(record.Trip())
	})

	return StationStats{
		MostCommonStart: modeOf(starts),
		MostCommonEnd:   modeOf(ends),
		MostCommonTrip:  modeOf(trips),
	}
}
