package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// numericText is plain decimal notation, stored as written.
var numericText = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)

// scientificText is decimal notation with an exponent, e.g. 1e3 or 2.5E-1.
var scientificText = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)[eE][+-]?[0-9]+$`)

// dateLayouts are tried in order for date columns.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// NormalizeColumn trims, lowercases and replaces spaces with underscores.
func NormalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// ParseDate accepts the date formats commonly found in match exports.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// NumericValue returns a number in plain decimal notation. Decimal text is
// kept as written; scientific notation is expanded, and values that do not
// fit a float64 are rejected.
func NumericValue(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if numericText.MatchString(s) {
		return s, true
	}
	if !scientificText.MatchString(s) {
		return "", false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

// Cleaned is a CSV reduced to the known columns of one table, with typed
// values ready for COPY. A nil value is NULL.
type Cleaned struct {
	Columns []string
	Rows    [][]any
}

// Clean applies the loading rules to a header and its records:
//   - column names are normalized and unknown columns ignored
//   - rows with no value at all and exact duplicates are dropped
//   - rows missing a required column, or with an unparseable date, are dropped
//   - non-numeric statistics and invalid ids become NULL
func Clean(spec TableSpec, header []string, records [][]string) (Cleaned, LoadResult) {
	res := LoadResult{Table: spec.Name}

	// position in record -> column spec, first occurrence wins
	type source struct {
		idx int
		col Column
	}
	var sources []source
	seenCol := make(map[string]bool)
	for i, h := range header {
		name := NormalizeColumn(h)
		col, ok := spec.Column(name)
		if !ok || seenCol[name] {
			if name != "" {
				res.IgnoredColumns = append(res.IgnoredColumns, name)
			}
			continue
		}
		seenCol[name] = true
		sources = append(sources, source{idx: i, col: col})
	}

	out := Cleaned{Columns: make([]string, len(sources)), Rows: [][]any{}}
	for i, s := range sources {
		out.Columns[i] = s.col.Name
	}
	for _, col := range spec.Columns {
		if col.Required && !seenCol[col.Name] {
			res.AddErrorf("required column %q missing", col.Name)
			res.Read = len(records)
			res.DroppedMissing = len(records)
			return out, res
		}
	}

	seenRow := make(map[string]bool)
	for _, rec := range records {
		res.Read++
		if isBlank(rec) {
			res.DroppedEmpty++
			continue
		}
		key := strings.Join(rec, "\x1f")
		if seenRow[key] {
			res.DroppedDuplicate++
			continue
		}
		seenRow[key] = true

		row := make([]any, len(sources))
		keep := true
		for i, s := range sources {
			raw := ""
			if s.idx < len(rec) {
				raw = rec[s.idx]
			}
			v, ok := convert(s.col, raw)
			if !ok {
				switch {
				case s.col.Kind == Date && strings.TrimSpace(raw) != "":
					res.DroppedBadDate++
					keep = false
				case s.col.Required:
					res.DroppedMissing++
					keep = false
				case s.col.Kind == Numeric && strings.TrimSpace(raw) != "":
					res.Coerced++
				}
			}
			if !keep {
				break
			}
			row[i] = v
		}
		if keep {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, res
}

// convert returns the typed value of a cell, or nil and false when the cell
// has no usable value.
func convert(col Column, raw string) (any, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, false
	}
	switch col.Kind {
	case ID:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			// ids exported as floats, e.g. "12.0"
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil || f != float64(int64(f)) {
				return nil, false
			}
			n = int64(f)
		}
		return n, true
	case Date:
		t, ok := ParseDate(s)
		if !ok {
			return nil, false
		}
		return t, true
	case Numeric:
		v, ok := NumericValue(s)
		if !ok {
			return nil, false
		}
		return v, true
	}
	return s, true
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
