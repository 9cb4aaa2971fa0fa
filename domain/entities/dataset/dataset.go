package dataset

import "bikeshare/domain/entities/trip"

// DefaultPageSize amount of raw records shown per page by the raw viewer
const DefaultPageSize = 5

// Schema describes which optional columns the city source provides
type Schema struct {
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`
}

// Dataset ordered trip records of a single city. Records keep the source order.
// A Dataset is never modified after construction: filtering builds a new one.
type Dataset struct {
	city    string
	schema  Schema
	records []trip.Record
}

// New builds a Dataset that owns a copy of records
func New(city string, schema Schema, records []trip.Record) *Dataset {
	owned := make([]trip.Record, len(records))
	copy(owned, records)
	return &Dataset{
		city:    city,
		schema:  schema,
		records: owned,
	}
}

func (d *Dataset) City() string {
	return d.city
}

func (d *Dataset) Schema() Schema {
	return d.schema
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the records in source order
func (d *Dataset) Records() []trip.Record {
	records := make([]trip.Record, len(d.records))
	copy(records, d.records)
	return records
}

// Each calls fn for every record in source order without copying the slice
func (d *Dataset) Each(fn func(record trip.Record)) {
	for i := range d.records {
		fn(d.records[i])
	}
}

// Where returns a new Dataset with the records that satisfy keep, preserving order
func (d *Dataset) Where(keep func(record trip.Record) bool) *Dataset {
	var kept []trip.Record
	for i := range d.records {
		if keep(d.records[i]) {
			kept = append(kept, d.records[i])
		}
	}
	return &Dataset{
		city:    d.city,
		schema:  d.schema,
		records: kept,
	}
}

// Page returns the records in [offset, offset+size), clamped to the dataset bounds.
// An out of range offset or a non-positive size returns an empty page.
func (d *Dataset) Page(offset int, size int) []trip.Record {
	if offset < 0 || size <= 0 || offset >= len(d.records) {
		return []trip.Record{}
	}

	end := offset + size
	if end > len(d.records) {
		end = len(d.records)
	}

	page := make([]trip.Record, end-offset)
	copy(page, d.records[offset:end])
	return page
}

// PageCount amount of pages of the given size needed to show the whole dataset
func (d *Dataset) PageCount(size int) int {
	if size <= 0 {
		return 0
	}
	return (len(d.records) + size - 1) / size
}
