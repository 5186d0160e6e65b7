package analytics_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore hands out fakeTx values. query decides what each statement
// returns.
type fakeStore struct {
	mu       sync.Mutex
	begins   int
	opts     []pgx.TxOptions
	beginErr error
	query    func(ctx context.Context, sql string, args []any) (pgx.Rows, error)
	tx       *fakeTx
}

func (s *fakeStore) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begins++
	s.opts = append(s.opts, opts)
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	s.tx = &fakeTx{query: s.query}
	return s.tx, nil
}

func (s *fakeStore) beginCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.begins
}

// fakeTx implements the parts of pgx.Tx the service uses. Calling anything
// else panics on the nil embedded interface.
type fakeTx struct {
	pgx.Tx
	query      func(ctx context.Context, sql string, args []any) (pgx.Rows, error)
	committed  bool
	rolledBack bool
	lastSQL    string
	lastArgs   []any
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	t.lastSQL = sql
	t.lastArgs = args
	return t.query(ctx, sql, args)
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

// fakeRows serves fixed rows. Values must already have the Go type of the
// scan target.
type fakeRows struct {
	columns []string
	values  [][]any
	pos     int
	closed  bool
}

func newRows(columns []string, values ...[]any) *fakeRows {
	return &fakeRows{columns: columns, values: values, pos: -1}
}

func (r *fakeRows) Close()                        { r.closed = true }
func (r *fakeRows) Err() error                    { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }
func (r *fakeRows) RawValues() [][]byte           { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.columns))
	for i, c := range r.columns {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.closed {
		return false
	}
	r.pos++
	return r.pos < len(r.values)
}

func (r *fakeRows) Values() ([]any, error) { return r.values[r.pos], nil }

func (r *fakeRows) Scan(dest ...any) error {
	row := r.values[r.pos]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d targets for %d values", len(dest), len(row))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if row[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(row[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan column %s: %s into %s", r.columns[i], v.Type(), target.Type())
		}
		target.Set(v)
	}
	return nil
}
