// Package fields accumulates the distinct values observed in each CSV column
// and classifies every column's value set into one presentation tier.
package fields

import (
	"sort"

	"csvfields/pkg/records"
)

// Set is a set of distinct raw string values. Membership is exact string
// equality; values are never trimmed or normalized.
type Set map[string]struct{}

// Accumulator maps column names to the set of distinct values seen for that
// column across every processed record. It grows monotonically while records
// stream in and is read exactly once at end of run by the classifier.
type Accumulator map[string]Set

// NewAccumulator returns an empty accumulator.
func NewAccumulator() Accumulator { return make(Accumulator) }

// Observe folds every (column, value) pair of rec into the accumulator.
// Columns not seen before start with a fresh set, so files with differing
// headers merge by column name.
func (a Accumulator) Observe(rec records.Record) {
	for col, v := range rec {
		s, ok := a[col]
		if !ok {
			s = make(Set)
			a[col] = s
		}
		s[v] = struct{}{}
	}
}

// Columns returns the accumulated column names in ascending lexicographic
// order, which is also the rendering order.
func (a Accumulator) Columns() []string {
	cols := make([]string, 0, len(a))
	for c := range a {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}
