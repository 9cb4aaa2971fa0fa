// Package statistics computes the aggregate statistics of a trip dataset.
// Every function makes one explicit pass over the records. Empty datasets never
// produce errors: mode and mean results come back with Ok set to false and
// counters come back as zero.
package statistics

import "bikeshare/domain/business/frequency"

// Mode most frequent value of a field. Ok is false when there was no value to count.
type Mode[T any] struct {
	Value T    `json:"value"`
	Count int  `json:"count"`
	Ok    bool `json:"ok"`
}

// Bound minimum or maximum of a field. Ok is false when there was no value to compare.
type Bound struct {
	Value int  `json:"value"`
	Ok    bool `json:"ok"`
}

func modeOf[T comparable](table *frequency.Table[T]) Mode[T] {
	value, count, ok := table.Mode()
	return Mode[T]{Value: value, Count: count, Ok: ok}
}
