package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// CityConfig sources of a single city
// + Source: trip log file, .csv or .xlsx
// + Stations: optional station catalog file (name,latitude,longitude)
type CityConfig struct {
	Source   string `yaml:"source"`
	Stations string `yaml:"stations"`
}

// Columns contains the header name of each field to read
type Columns struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	Duration     string `yaml:"duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

type LoaderConfig struct {
	DataDir     string                `yaml:"data_dir"`
	Cities      map[string]CityConfig `yaml:"cities"`
	Columns     Columns               `yaml:"columns"`
	TimeLayouts []string              `yaml:"time_layouts"`
	Months      []string              `yaml:"months"`
}

var defaultColumns = Columns{
	StartTime:    "Start Time",
	EndTime:      "End Time",
	Duration:     "Trip Duration",
	StartStation: "Start Station",
	EndStation:   "End Station",
	UserType:     "User Type",
	Gender:       "Gender",
	BirthYear:    "Birth Year",
}

var defaultTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// the trip logs cover the first half of the year
var defaultMonths = []string{"January", "February", "March", "April", "May", "June"}

func LoadConfig(configFilepath string) (*LoaderConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var loaderConfig LoaderConfig
	err = yaml.Unmarshal(configFile, &loaderConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing loader config file: %w", err)
	}

	loaderConfig.ApplyDefaults()
	return &loaderConfig, nil
}

// ApplyDefaults fills every empty field with its default value
func (c *LoaderConfig) ApplyDefaults() {
	c.Columns.StartTime = orDefault(c.Columns.StartTime, defaultColumns.StartTime)
	c.Columns.EndTime = orDefault(c.Columns.EndTime, defaultColumns.EndTime)
	c.Columns.Duration = orDefault(c.Columns.Duration, defaultColumns.Duration)
	c.Columns.StartStation = orDefault(c.Columns.StartStation, defaultColumns.StartStation)
	c.Columns.EndStation = orDefault(c.Columns.EndStation, defaultColumns.EndStation)
	c.Columns.UserType = orDefault(c.Columns.UserType, defaultColumns.UserType)
	c.Columns.Gender = orDefault(c.Columns.Gender, defaultColumns.Gender)
	c.Columns.BirthYear = orDefault(c.Columns.BirthYear, defaultColumns.BirthYear)

	if len(c.TimeLayouts) == 0 {
		c.TimeLayouts = append([]string(nil), defaultTimeLayouts...)
	}

	if len(c.Months) == 0 {
		c.Months = append([]string(nil), defaultMonths...)
	}

	if c.Cities == nil {
		c.Cities = make(map[string]CityConfig)
	}
}

// ResolveCity validates a raw city name and returns its canonical key and sources.
// Matching ignores case and surrounding spaces.
func (c *LoaderConfig) ResolveCity(name string) (string, CityConfig, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	cityConfig, ok := c.Cities[key]
	if !ok {
		return "", CityConfig{}, fmt.Errorf("%w: %q, expected one of: %s", dataErrors.ErrUnknownCity, name, strings.Join(c.CityNames(), ", "))
	}
	return key, cityConfig, nil
}

// CityNames returns the configured city keys sorted alphabetically
func (c *LoaderConfig) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for name := range c.Cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path resolves a source file relative to DataDir. Absolute paths are kept.
func (c *LoaderConfig) Path(file string) string {
	if file == "" || filepath.IsAbs(file) || c.DataDir == "" {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

func orDefault(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
