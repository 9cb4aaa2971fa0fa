package report

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/statistics"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/filter"
)

const (
	TimeQuery     = "time"
	StationQuery  = "station"
	DurationQuery = "duration"
	UserQuery     = "user"
	DistanceQuery = "distance"
)

// Report every statistic group of one query. Distance is nil when the city has no station catalog.
type Report struct {
	City     string                    `json:"city"`
	Criteria filter.Criteria           `json:"criteria"`
	Records  int                       `json:"records"`
	Time     statistics.TimeStats      `json:"time"`
	Station  statistics.StationStats   `json:"station"`
	Duration statistics.DurationStats  `json:"duration"`
	User     statistics.UserStats      `json:"user"`
	Distance *statistics.DistanceStats `json:"distance,omitempty"`
}

// DatasetLoader source of datasets and station catalogs
type DatasetLoader interface {
	Load(city string) (*dataset.Dataset, error)
	LoadStations(city string) (station.Catalog, error)
}

// Session keeps the unfiltered dataset of a city so it can be queried many times
type Session struct {
	dataset *dataset.Dataset
	catalog station.Catalog
}

// NewSession loads the dataset and station catalog of city
func NewSession(loader DatasetLoader, city string) (*Session, error) {
	ds, err := loader.Load(city)
	if err != nil {
		return nil, fmt.Errorf("error loading trips: %w", err)
	}

	catalog, err := loader.LoadStations(city)
	if err != nil {
		return nil, fmt.Errorf("error loading stations: %w", err)
	}

	log.Infof("[report][city: %s][status: OK] session ready: %d trips, %d stations", ds.City(), ds.Len(), len(catalog))
	return &Session{
		dataset: ds,
		catalog: catalog,
	}, nil
}

// Dataset returns the unfiltered dataset of the session
func (s *Session) Dataset() *dataset.Dataset {
	return s.dataset
}

// Query filters the session dataset and computes every statistic group.
// The filtered dataset is returned as well for paged raw access.
func (s *Session) Query(criteria filter.Criteria) (*Report, *dataset.Dataset, error) {
	filtered := criteria.Apply(s.dataset)

	r, err := Build(filtered, criteria, s.catalog)
	if err != nil {
		return nil, nil, err
	}
	return r, filtered, nil
}

// Build computes every statistic group of an already filtered dataset
func Build(filtered *dataset.Dataset, criteria filter.Criteria, catalog station.Catalog) (*Report, error) {
	r := &Report{
		City:     filtered.City(),
		Criteria: criteria,
		Records:  filtered.Len(),
	}

	timed(r.City, TimeQuery, func() {
		r.Time = statistics.ComputeTimeStats(filtered)
	})

	timed(r.City, StationQuery, func() {
		r.Station = statistics.ComputeStationStats(filtered)
	})

	var err error
	timed(r.City, DurationQuery, func() {
		r.Duration, err = statistics.ComputeDurationStats(filtered)
	})
	if err != nil {
		return nil, fmt.Errorf("[city: %s] error computing duration stats: %w", r.City, err)
	}

	timed(r.City, UserQuery, func() {
		r.User = statistics.ComputeUserStats(filtered)
	})

	if len(catalog) > 0 {
		timed(r.City, DistanceQuery, func() {
			distance := statistics.ComputeDistanceStats(filtered, catalog)
			r.Distance = &distance
		})
	}

	return r, nil
}

func timed(city string, query string, compute func()) {
	start := time.Now()
	compute()
	log.Debugf("[report][city: %s][query: %s][status: OK] computed in %s", city, query, time.Since(start))
}
