// Package analytics runs the aggregation queries on behalf of the views.
// Every operation gets its own timeout and read-only transaction, passes
// through a circuit breaker guarding the store, and returns a Result: no
// error or panic escapes to the caller.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/config"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/filter"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/metrics"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

const breakerName = "football-store"

// Store opens transactions. *db.Pool satisfies it.
type Store interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// Views is what the pages and exports need from the service.
type Views interface {
	TeamNames(ctx context.Context) Result[string]
	TeamSummary(ctx context.Context) Result[query.TeamSummaryRow]
	TopScorers(ctx context.Context, limit int) Result[query.ScorerRow]
	Matches(ctx context.Context, team filter.Team) Result[query.MatchRow]
	PlayerStats(ctx context.Context, team filter.Team) Result[query.PlayerStatRow]
	TeamPerformance(ctx context.Context, team string) Result[query.TeamPerformanceRow]
	BindTeam(ctx context.Context, selected string) filter.Team
}

var _ Views = (*Service)(nil)

// Options tune query execution.
type Options struct {
	QueryTimeout        time.Duration
	BreakerMaxFailures  uint32
	BreakerOpenDuration time.Duration
}

// OptionsFromConfig reads the query execution settings.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		QueryTimeout:        cfg.QueryTimeout,
		BreakerMaxFailures:  cfg.BreakerMaxFailures,
		BreakerOpenDuration: cfg.BreakerOpenDuration,
	}
}

// Service runs the query library against a store.
type Service struct {
	store   Store
	opts    Options
	breaker *gobreaker.CircuitBreaker[any]
	logger  *slog.Logger
}

// New creates a Service. The store is shared for the life of the process.
func New(store Store, opts Options, logger *slog.Logger) *Service {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 5 * time.Second
	}
	if opts.BreakerMaxFailures == 0 {
		opts.BreakerMaxFailures = 5
	}

	s := &Service{store: store, opts: opts, logger: logger}
	metrics.SetBreakerState(breakerName, stateToFloat(gobreaker.StateClosed))

	s.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     opts.BreakerOpenDuration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerMaxFailures
		},
		// Only failures of the store itself count; a statement failing on
		// its own data leaves the other views usable.
		IsSuccessful: func(err error) bool {
			return err == nil || !storeUnhealthy(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
			metrics.SetBreakerState(name, stateToFloat(to))
		},
	})
	return s
}

// TeamNames returns the valid team filter values.
func (s *Service) TeamNames(ctx context.Context) Result[string] {
	return run(ctx, s, query.StmtAllTeamNames, query.AllTeamNames)
}

func (s *Service) TeamSummary(ctx context.Context) Result[query.TeamSummaryRow] {
	return run(ctx, s, query.StmtTeamSummary, query.TeamSummary)
}

func (s *Service) TopScorers(ctx context.Context, limit int) Result[query.ScorerRow] {
	return run(ctx, s, query.StmtTopScorers, func(ctx context.Context, q query.Querier) ([]query.ScorerRow, error) {
		return query.TopScorers(ctx, q, limit)
	})
}

func (s *Service) Matches(ctx context.Context, team filter.Team) Result[query.MatchRow] {
	return run(ctx, s, query.StmtMatchList, func(ctx context.Context, q query.Querier) ([]query.MatchRow, error) {
		return query.MatchList(ctx, q, team)
	})
}

func (s *Service) PlayerStats(ctx context.Context, team filter.Team) Result[query.PlayerStatRow] {
	return run(ctx, s, query.StmtPlayerStats, func(ctx context.Context, q query.Querier) ([]query.PlayerStatRow, error) {
		return query.PlayerStats(ctx, q, team)
	})
}

func (s *Service) TeamPerformance(ctx context.Context, team string) Result[query.TeamPerformanceRow] {
	return run(ctx, s, query.StmtTeamPerformance, func(ctx context.Context, q query.Querier) ([]query.TeamPerformanceRow, error) {
		return query.TeamPerformance(ctx, q, team)
	})
}

// BindTeam validates a selection against the current team names. Unknown
// names and a failed name lookup both fall back to NoFilter.
func (s *Service) BindTeam(ctx context.Context, selected string) filter.Team {
	if selected == "" || selected == filter.AllTeams {
		return filter.NoFilter()
	}
	names := s.TeamNames(ctx)
	if !names.OK() {
		s.logger.Warn("Team filter dropped, team names unavailable",
			"team", selected, "error", names.Err)
		return filter.NoFilter()
	}
	team, err := filter.Bind(selected, names.Rows)
	if err != nil {
		s.logger.Info("Ignoring team filter", "error", err)
	}
	return team
}

// run executes one operation and contains any failure in the Result.
func run[T any](ctx context.Context, s *Service, op string, fn func(context.Context, query.Querier) ([]T, error)) Result[T] {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	out, err := s.breaker.Execute(func() (any, error) {
		return s.readOnly(ctx, op, func(tx pgx.Tx) (any, error) {
			return fn(ctx, tx)
		})
	})

	var rows []T
	if err == nil {
		var ok bool
		if rows, ok = out.([]T); !ok {
			err = fmt.Errorf("unexpected result type %T", out)
		}
	}
	if err != nil {
		qerr := newQueryError(op, err)
		metrics.RecordQuery(op, time.Since(start), qerr.Kind)
		s.logger.Error("Query failed",
			"op", op,
			"kind", qerr.Kind,
			"duration", time.Since(start),
			"error", err)
		return failed[T](qerr)
	}

	metrics.RecordQuery(op, time.Since(start), "")
	s.logger.Debug("Query complete", "op", op, "rows", len(rows), "duration", time.Since(start))
	return Result[T]{Rows: rows}
}

// readOnly runs fn in a read-only transaction. A panic in fn is turned into
// an error.
func (s *Service) readOnly(ctx context.Context, op string, fn func(pgx.Tx) (any, error)) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("panic in %s: %v", op, r)
		}
	}()

	tx, err := s.store.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("begin read-only transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	out, err = fn(tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	}
	return 0
}
