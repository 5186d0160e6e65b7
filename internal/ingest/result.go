package ingest

import (
	"fmt"
	"strings"
)

// LoadResult tracks counts and errors from cleaning and loading one file.
type LoadResult struct {
	Table            string
	Read             int
	Inserted         int
	DroppedEmpty     int
	DroppedDuplicate int
	DroppedMissing   int
	DroppedBadDate   int
	Coerced          int // non-numeric statistics stored as NULL
	IgnoredColumns   []string
	Errors           []string
}

// Dropped is the number of rows removed by cleaning.
func (r *LoadResult) Dropped() int {
	return r.DroppedEmpty + r.DroppedDuplicate + r.DroppedMissing + r.DroppedBadDate
}

// AddErrorf records a formatted error message.
func (r *LoadResult) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the load.
func (r *LoadResult) Summary() string {
	s := fmt.Sprintf(
		"table=%s read=%d inserted=%d dropped=%d (empty=%d duplicate=%d missing=%d bad_date=%d) coerced=%d errors=%d",
		r.Table, r.Read, r.Inserted, r.Dropped(),
		r.DroppedEmpty, r.DroppedDuplicate, r.DroppedMissing, r.DroppedBadDate,
		r.Coerced, len(r.Errors),
	)
	if len(r.IgnoredColumns) > 0 {
		s += " ignored_columns=" + strings.Join(r.IgnoredColumns, ",")
	}
	return s
}
