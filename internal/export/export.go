// Package export serializes result tables to CSV and parses them back.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"
)

// Record is a row that knows its column names and text form.
type Record interface {
	CSVHeader() []string
	CSVRecord() []string
}

// Table is a header and its text rows.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Len is the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// FromRows builds a table from typed rows. The header comes from the zero
// value of T, so an empty result still exports its columns.
func FromRows[T Record](rows []T) Table {
	var zero T
	t := Table{Columns: zero.CSVHeader(), Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.CSVRecord())
	}
	return t
}

// WriteCSV writes the header then one line per row. Fields containing the
// delimiter, quotes or line breaks are quoted.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := writeRecord(w, cw, t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d: %d fields, header has %d", i+1, len(row), len(t.Columns))
		}
		if err := writeRecord(w, cw, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeRecord quotes a lone empty field. encoding/csv writes it as a blank
// line, which readers skip.
func writeRecord(w io.Writer, cw *csv.Writer, rec []string) error {
	if len(rec) != 1 || rec[0] != "" {
		return cw.Write(rec)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")
	return err
}

// ReadCSV parses what WriteCSV produced. The first line is the header and
// every row must have as many fields.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, errors.New("read csv: missing header")
	}
	if err != nil {
		return Table{}, fmt.Errorf("read header: %w", err)
	}

	t := Table{Columns: header, Rows: [][]string{}}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read csv: %w", err)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// FileName is the download name of a view exported on the given day,
// e.g. players_20240131.csv.
func FileName(view string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", view, now.Format("20060102"))
}
