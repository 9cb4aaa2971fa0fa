package statistics

import (
	"fmt"

	"bikeshare/domain/business/duration"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// DurationStats total and average trip duration, in seconds and decomposed.
// HasMean is false for an empty dataset; Mean and MeanParts are zero in that case.
type DurationStats struct {
	Count      int            `json:"count"`
	Total      float64        `json:"total"`
	TotalParts duration.Parts `json:"total_parts"`
	Mean       float64        `json:"mean"`
	MeanParts  duration.Parts `json:"mean_parts"`
	HasMean    bool           `json:"has_mean"`
}

// ComputeDurationStats fails if any record carries a negative duration, even when the total stays positive
func ComputeDurationStats(ds *dataset.Dataset) (DurationStats, error) {
	var stats DurationStats
	negative := 0
	ds.Each(func(record trip.Record) {
		if record.Duration < 0 {
			negative += 1
		}
		stats.Count += 1
		stats.Total += record.Duration
	})

	if negative > 0 {
		return DurationStats{}, fmt.Errorf("%w: %d of %d records", dataErrors.ErrNegativeDuration, negative, stats.Count)
	}

	totalParts, err := duration.Decompose(stats.Total)
	if err != nil {
		return DurationStats{}, fmt.Errorf("error decomposing total duration: %w", err)
	}
	stats.TotalParts = totalParts

	if stats.Count == 0 {
		return stats, nil
	}

	stats.Mean = stats.Total / float64(stats.Count)
	meanParts, err := duration.Decompose(stats.Mean)
	if err != nil {
		return DurationStats{}, fmt.Errorf("error decomposing mean duration: %w", err)
	}
	stats.MeanParts = meanParts
	stats.HasMean = true

	return stats, nil
}
