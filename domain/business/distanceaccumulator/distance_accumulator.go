package distanceaccumulator

// DistanceAccumulator struct that collects the distance traveled by a group of trips
// + Counter: amount of trips with a known distance
// + Skipped: amount of trips whose stations have no known location
// + TotalDistance: sum of distances in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	Skipped       int     `json:"skipped"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

// Skip counts a trip whose distance could not be computed
func (da *DistanceAccumulator) Skip() {
	da.Skipped += 1
}

// GetAverageDistance returns the mean distance. ok is false if no distance was accumulated.
func (da *DistanceAccumulator) GetAverageDistance() (average float64, ok bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return da.TotalDistance / float64(da.Counter), true
}
