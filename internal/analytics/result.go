package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	gobreaker "github.com/sony/gobreaker/v2"
)

// Kinds of query failure.
const (
	KindTimeout     = "timeout"
	KindUnavailable = "unavailable"
	KindQuery       = "query"
)

// QueryError reports a failed aggregation. It is contained at the operation
// boundary: the view that asked gets an empty table and a diagnostic.
type QueryError struct {
	Op   string
	Kind string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Diagnostic is the short message shown in place of the failed panel.
func (e *QueryError) Diagnostic() string {
	switch e.Kind {
	case KindTimeout:
		return "The query took too long and was cancelled."
	case KindUnavailable:
		return "The database is temporarily unavailable. Try again shortly."
	default:
		return "The data could not be loaded."
	}
}

func newQueryError(op string, err error) *QueryError {
	return &QueryError{Op: op, Kind: classify(err), Err: err}
}

// storeUnhealthy reports a failure that says something about the store
// rather than about one statement: a server error of a connection,
// resource, operator or system class, or any error that did not come from
// the server. A caller that went away says nothing about the store.
func storeUnhealthy(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return true
	}
	for _, class := range []string{"08", "53", "57P", "58"} {
		if strings.HasPrefix(pgErr.Code, class) {
			return true
		}
	}
	return false
}

func classify(err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return KindUnavailable
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return KindTimeout
	}
	return KindQuery
}

// Result is the outcome of one view query. A failed query has no rows and a
// non-nil Err; a legitimately empty view is OK with no rows.
type Result[T any] struct {
	Rows []T
	Err  *QueryError
}

// OK reports whether the query succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

// Empty reports a successful query that returned nothing.
func (r Result[T]) Empty() bool { return r.Err == nil && len(r.Rows) == 0 }

// Diagnostic is empty for a successful query.
func (r Result[T]) Diagnostic() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Diagnostic()
}

// First returns the first row, if any.
func (r Result[T]) First() (T, bool) {
	if len(r.Rows) == 0 {
		var zero T
		return zero, false
	}
	return r.Rows[0], true
}

func failed[T any](err *QueryError) Result[T] {
	return Result[T]{Rows: []T{}, Err: err}
}
