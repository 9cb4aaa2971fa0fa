package entities

// Metadata extra information attached to every result that leaves the pipeline
// + City: city the data belongs to
// + Type: kind of result, e.g. time-stats, station-stats
// + Stage: component that produced the result
// + Month, Weekday: filter applied to the dataset, "All" when no filter was applied
// + Records: amount of records the result was computed from
type Metadata struct {
	City    string `json:"city"`
	Type    string `json:"type"`
	Stage   string `json:"stage"`
	Month   string `json:"month"`
	Weekday string `json:"weekday"`
	Records int    `json:"records"`
}

func NewMetadata(city string, dataType string, stage string) Metadata {
	return Metadata{
		City:  city,
		Type:  dataType,
		Stage: stage,
	}
}

// WithFilter returns a copy of the metadata describing the filter and the amount of records used
func (m Metadata) WithFilter(month string, weekday string, records int) Metadata {
	m.Month = month
	m.Weekday = weekday
	m.Records = records
	return m
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.City
}
