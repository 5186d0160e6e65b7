package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/jackc/pgx/v5"
)

// DB is the write access loading needs. *pgxpool.Pool and pgx.Tx satisfy it.
type DB interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReadCSV reads a whole delimited file: the header and every record.
// Records may have fewer or more fields than the header.
func ReadCSV(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("empty file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read records: %w", err)
	}
	return header, records, nil
}

// Load cleans a CSV and appends the surviving rows to table with COPY.
// Nothing is written when cleaning leaves no rows.
func Load(ctx context.Context, db DB, table string, r io.Reader, logger *slog.Logger) (LoadResult, error) {
	spec, err := Lookup(table)
	if err != nil {
		return LoadResult{Table: table}, err
	}

	header, records, err := ReadCSV(r)
	if err != nil {
		return LoadResult{Table: table}, fmt.Errorf("%s: %w", table, err)
	}

	cleaned, res := Clean(spec, header, records)
	if len(res.IgnoredColumns) > 0 {
		logger.Warn("Ignoring unknown columns", "table", table, "columns", res.IgnoredColumns)
	}
	if len(res.Errors) > 0 {
		return res, fmt.Errorf("%s: %s", table, res.Errors[0])
	}
	logger.Info("Cleaned file",
		"table", table,
		"read", res.Read,
		"kept", len(cleaned.Rows),
		"dropped", res.Dropped(),
		"coerced", res.Coerced)

	if len(cleaned.Rows) == 0 {
		return res, nil
	}

	n, err := db.CopyFrom(ctx, pgx.Identifier{spec.Name}, cleaned.Columns, pgx.CopyFromRows(cleaned.Rows))
	if err != nil {
		return res, fmt.Errorf("copy into %s: %w", table, err)
	}
	res.Inserted = int(n)

	if spec.Sequence != "" && slices.Contains(cleaned.Columns, spec.Sequence) {
		if err := syncSequence(ctx, db, spec); err != nil {
			res.AddErrorf("sync sequence: %v", err)
			logger.Warn("Sequence not realigned", "table", table, "error", err)
		}
	}

	logger.Info("Load complete", "summary", res.Summary())
	return res, nil
}

// syncSequence moves the serial sequence past explicitly loaded ids.
func syncSequence(ctx context.Context, db DB, spec TableSpec) error {
	table := pgx.Identifier{spec.Name}.Sanitize()
	col := pgx.Identifier{spec.Sequence}.Sanitize()
	sql := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence($1, $2), COALESCE(MAX(%s), 0) + 1, false) FROM %s",
		col, table)
	var next int64
	return db.QueryRow(ctx, sql, spec.Name, spec.Sequence).Scan(&next)
}

// Count returns the number of rows of a loadable table.
func Count(ctx context.Context, db DB, table string) (int64, error) {
	spec, err := Lookup(table)
	if err != nil {
		return 0, err
	}
	var n int64
	sql := "SELECT COUNT(*) FROM " + pgx.Identifier{spec.Name}.Sanitize()
	if err := db.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
