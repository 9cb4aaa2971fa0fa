package frequency

import "cmp"

// Table counts occurrences of values in a single pass and resolves the mode.
// Ties between equally frequent values are broken by picking the smallest value
// according to less, so the result never depends on insertion or map order.
type Table[K comparable] struct {
	counts map[K]int
	less   func(a K, b K) bool
}

// New returns a Table ordered by less
func New[K comparable](less func(a K, b K) bool) *Table[K] {
	return &Table[K]{
		counts: make(map[K]int),
		less:   less,
	}
}

// NewOrdered returns a Table using the natural order of K
func NewOrdered[K cmp.Ordered]() *Table[K] {
	return New(cmp.Less[K])
}

// Add counts one occurrence of value
func (t *Table[K]) Add(value K) {
	t.counts[value] += 1
}

// Mode returns the most frequent value and its count. ok is false if the table is empty.
func (t *Table[K]) Mode() (value K, count int, ok bool) {
	for candidate, candidateCount := range t.counts {
		if !ok || candidateCount > count || (candidateCount == count && t.less(candidate, value)) {
			value = candidate
			count = candidateCount
			ok = true
		}
	}
	return value, count, ok
}
