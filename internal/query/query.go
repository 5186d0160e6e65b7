// Package query is the aggregation query library: a fixed set of read-only,
// parameterized statements over the football schema and the typed rows they
// return.
package query

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/filter"
)

const (
	DefaultScorerLimit = 10
	MaxScorerLimit     = 100
)

// Querier runs a statement. *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
// Statements are called by their prepared name, so the connection must have
// been set up by db.New in read-only mode.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// NormalizeLimit maps a non-positive limit to the default and caps the rest.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultScorerLimit
	case limit > MaxScorerLimit:
		return MaxScorerLimit
	}
	return limit
}

// TeamSummary returns every team, busiest first.
func TeamSummary(ctx context.Context, q Querier) ([]TeamSummaryRow, error) {
	return collect[TeamSummaryRow](ctx, q, StmtTeamSummary)
}

// TopScorers returns the players with the most goals. Players without any
// numeric goals value are left out.
func TopScorers(ctx context.Context, q Querier, limit int) ([]ScorerRow, error) {
	return collect[ScorerRow](ctx, q, StmtTopScorers, NormalizeLimit(limit))
}

// MatchList returns fixtures, newest first, optionally restricted to those a
// team played home or away.
func MatchList(ctx context.Context, q Querier, team filter.Team) ([]MatchRow, error) {
	records, err := collect[matchRecord](ctx, q, StmtMatchList, team.Arg())
	if err != nil {
		return nil, err
	}
	out := make([]MatchRow, len(records))
	for i, m := range records {
		out[i] = m.row()
	}
	return out, nil
}

// PlayerStats returns the season line of every player, optionally restricted
// to one team's squad. Players with no statistics appear with zero totals.
func PlayerStats(ctx context.Context, q Querier, team filter.Team) ([]PlayerStatRow, error) {
	return collect[PlayerStatRow](ctx, q, StmtPlayerStats, team.Arg())
}

// TeamPerformance returns the record of one team: no rows when the name is
// unknown, one row otherwise.
func TeamPerformance(ctx context.Context, q Querier, team string) ([]TeamPerformanceRow, error) {
	return collect[TeamPerformanceRow](ctx, q, StmtTeamPerformance, team)
}

// AllTeamNames returns the distinct team names in alphabetical order. It is
// the only source of valid filter values.
func AllTeamNames(ctx context.Context, q Querier) ([]string, error) {
	rows, err := q.Query(ctx, StmtAllTeamNames)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StmtAllTeamNames, err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StmtAllTeamNames, err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func collect[T any](ctx context.Context, q Querier, stmt string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", stmt, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", stmt, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
