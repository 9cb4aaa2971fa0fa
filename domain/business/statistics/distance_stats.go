package statistics

import (
	"github.com/umahmood/haversine"

	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// DistanceStats straight line distance traveled between start and end stations.
// Trips with a station missing from the catalog are counted in Skipped.
type DistanceStats struct {
	Trips   int     `json:"trips"`
	Skipped int     `json:"skipped"`
	TotalKm float64 `json:"total_km"`
	MeanKm  float64 `json:"mean_km"`
	HasMean bool    `json:"has_mean"`
}

func ComputeDistanceStats(ds *dataset.Dataset, catalog station.Catalog) DistanceStats {
	accumulator := distanceaccumulator.NewDistanceAccumulator()

	ds.Each(func(record trip.Record) {
		start, okStart := catalog.Lookup(record.StartStation)
		end, okEnd := catalog.Lookup(record.EndStation)
		if !okStart || !okEnd {
			accumulator.Skip()
			return
		}
		accumulator.UpdateAccumulator(calculateDistance(start, end))
	})

	mean, ok := accumulator.GetAverageDistance()
	return DistanceStats{
		Trips:   accumulator.Counter,
		Skipped: accumulator.Skipped,
		TotalKm: accumulator.TotalDistance,
		MeanKm:  mean,
		HasMean: ok,
	}
}

// calculateDistance returns the distance in km between two stations using haversine formula
func calculateDistance(start station.Station, end station.Station) float64 {
	startCoord := haversine.Coord{Lat: start.Latitude, Lon: start.Longitude}
	endCoord := haversine.Coord{Lat: end.Latitude, Lon: end.Longitude}

	_, km := haversine.Distance(startCoord, endCoord)
	return km
}
