package loader

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/loader/config"
)

const absentColumn = -1

// columnIndexes position of each field in the source header
type columnIndexes struct {
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// Loader reads the trip log of a city into a Dataset
type Loader struct {
	config *config.LoaderConfig
}

// New returns a Loader working on a defaulted copy of loaderConfig; the caller's config is left untouched.
// A nil config behaves like an empty one.
func New(loaderConfig *config.LoaderConfig) *Loader {
	var cfg config.LoaderConfig
	if loaderConfig != nil {
		cfg = *loaderConfig
	}
	cfg.ApplyDefaults()
	return &Loader{
		config: &cfg,
	}
}

// Load reads every row of the city source, in order, and derives the temporal fields of each record.
// Returns an error wrapping ErrLoad if the city or its source is unknown, unreadable or lacks a
// required column, and an error wrapping ErrParse if a row holds a malformed value.
func (l *Loader) Load(city string) (*dataset.Dataset, error) {
	cityKey, cityConfig, err := l.config.ResolveCity(city)
	if err != nil {
		return nil, err
	}

	sourcePath := l.config.Path(cityConfig.Source)
	rows, err := readTable(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("[city: %s] %w", cityKey, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("[city: %s] %w: %s has no header", cityKey, dataErrors.ErrMissingColumn, sourcePath)
	}

	indexes, schema, err := l.mapColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("[city: %s] %w", cityKey, err)
	}

	records := make([]trip.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		record, err := l.parseRow(row, indexes)
		if err != nil {
			// header is line 1
			return nil, fmt.Errorf("[city: %s][line: %d] %w", cityKey, i+2, err)
		}
		records = append(records, record)
	}

	log.Debugf("[loader][city: %s][status: OK] %d records loaded from %s", cityKey, len(records), sourcePath)
	return dataset.New(cityKey, schema, records), nil
}

// LoadStations reads the station catalog of the city. A city without catalog gets an empty one.
func (l *Loader) LoadStations(city string) (station.Catalog, error) {
	cityKey, cityConfig, err := l.config.ResolveCity(city)
	if err != nil {
		return nil, err
	}

	catalog := station.Catalog{}
	if cityConfig.Stations == "" {
		log.Debugf("[loader][city: %s] no station catalog configured", cityKey)
		return catalog, nil
	}

	stationsPath := l.config.Path(cityConfig.Stations)
	rows, err := readTable(stationsPath)
	if err != nil {
		return nil, fmt.Errorf("[city: %s] %w", cityKey, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("[city: %s] %w: %s has no header", cityKey, dataErrors.ErrMissingColumn, stationsPath)
	}

	header := lowerHeaderIndex(rows[0])
	nameIdx, okName := header["name"]
	latIdx, okLat := header["latitude"]
	lonIdx, okLon := header["longitude"]
	if !okName || !okLat || !okLon {
		return nil, fmt.Errorf("[city: %s] %w: station catalog needs name, latitude and longitude", cityKey, dataErrors.ErrMissingColumn)
	}

	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		latitude, err := parseNumber(cell(row, latIdx), "latitude")
		if err != nil {
			return nil, fmt.Errorf("[city: %s][stations line: %d] %w", cityKey, i+2, err)
		}

		longitude, err := parseNumber(cell(row, lonIdx), "longitude")
		if err != nil {
			return nil, fmt.Errorf("[city: %s][stations line: %d] %w", cityKey, i+2, err)
		}

		catalog.Add(station.Station{
			Name:      cell(row, nameIdx),
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	log.Debugf("[loader][city: %s][status: OK] %d stations loaded from %s", cityKey, len(catalog), stationsPath)
	return catalog, nil
}

// mapColumns finds the position of every field. Gender and birth year are optional
// and their presence defines the dataset schema.
func (l *Loader) mapColumns(header []string) (columnIndexes, dataset.Schema, error) {
	index := headerIndex(header)
	columns := l.config.Columns

	var missing []string
	lookup := func(name string) int {
		position, ok := index[name]
		if !ok {
			missing = append(missing, name)
			return absentColumn
		}
		return position
	}

	indexes := columnIndexes{
		startTime:    lookup(columns.StartTime),
		endTime:      lookup(columns.EndTime),
		duration:     lookup(columns.Duration),
		startStation: lookup(columns.StartStation),
		endStation:   lookup(columns.EndStation),
		userType:     lookup(columns.UserType),
		gender:       absentColumn,
		birthYear:    absentColumn,
	}

	if len(missing) > 0 {
		return columnIndexes{}, dataset.Schema{}, fmt.Errorf("%w: %s", dataErrors.ErrMissingColumn, strings.Join(missing, ", "))
	}

	var schema dataset.Schema
	if position, ok := index[columns.Gender]; ok {
		indexes.gender = position
		schema.HasGender = true
	}
	if position, ok := index[columns.BirthYear]; ok {
		indexes.birthYear = position
		schema.HasBirthYear = true
	}

	return indexes, schema, nil
}

func (l *Loader) parseRow(row []string, indexes columnIndexes) (trip.Record, error) {
	startTime, err := l.parseTimestamp(cell(row, indexes.startTime))
	if err != nil {
		return trip.Record{}, fmt.Errorf("column %q: %w", l.config.Columns.StartTime, err)
	}

	endTime, err := l.parseTimestamp(cell(row, indexes.endTime))
	if err != nil {
		return trip.Record{}, fmt.Errorf("column %q: %w", l.config.Columns.EndTime, err)
	}

	duration, err := parseNumber(cell(row, indexes.duration), l.config.Columns.Duration)
	if err != nil {
		return trip.Record{}, err
	}
	if duration < 0 {
		return trip.Record{}, fmt.Errorf("%w: %s must not be negative, got %v", dataErrors.ErrInvalidNumber, l.config.Columns.Duration, duration)
	}

	record := trip.NewRecord(
		startTime,
		endTime,
		duration,
		cell(row, indexes.startStation),
		cell(row, indexes.endStation),
		trip.UserType(cell(row, indexes.userType)),
	)

	if indexes.gender != absentColumn {
		record = record.WithGender(trip.Gender(cell(row, indexes.gender)))
	}

	if indexes.birthYear != absentColumn {
		rawYear := cell(row, indexes.birthYear)
		if rawYear != "" {
			year, err := parseNumber(rawYear, l.config.Columns.BirthYear)
			if err != nil {
				return trip.Record{}, err
			}
			record = record.WithBirthYear(int(year))
		}
	}

	return record, nil
}

// parseTimestamp tries every configured layout in order, then an Excel serial date
func (l *Loader) parseTimestamp(value string) (time.Time, error) {
	for _, layout := range l.config.TimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	if parsed, ok := excelSerialTime(value); ok {
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", dataErrors.ErrInvalidTimestamp, value)
}

func parseNumber(value string, field string) (float64, error) {
	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, fmt.Errorf("%w: %s %q", dataErrors.ErrInvalidNumber, field, value)
	}
	return number, nil
}

func lowerHeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}
