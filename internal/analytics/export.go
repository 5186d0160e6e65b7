package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/export"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/filter"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

// Exportable views.
const (
	ViewTeams           = "teams"
	ViewTeamSummary     = "team-summary"
	ViewTopScorers      = "top-scorers"
	ViewMatches         = "matches"
	ViewPlayers         = "players"
	ViewTeamPerformance = "team-performance"
)

// ExportViews lists the view names ExportTable accepts.
var ExportViews = []string{
	ViewTeams,
	ViewTeamSummary,
	ViewTopScorers,
	ViewMatches,
	ViewPlayers,
	ViewTeamPerformance,
}

// ErrUnknownView is returned for a view name outside ExportViews.
var ErrUnknownView = errors.New("unknown view")

// ExportRequest selects a view and its parameters. Team is the raw
// selection; it is bound against the known team names first.
type ExportRequest struct {
	View  string
	Team  string
	Limit int
}

// ExportTable runs a view and returns it as a table. A failed query returns
// its *QueryError.
func ExportTable(ctx context.Context, v Views, req ExportRequest) (export.Table, error) {
	switch req.View {
	case ViewTeams:
		res := v.TeamNames(ctx)
		names := make([]query.TeamName, len(res.Rows))
		for i, n := range res.Rows {
			names[i] = query.TeamName(n)
		}
		return tableOf(names, res.Err)
	case ViewTeamSummary:
		res := v.TeamSummary(ctx)
		return tableOf(res.Rows, res.Err)
	case ViewTopScorers:
		res := v.TopScorers(ctx, req.Limit)
		return tableOf(res.Rows, res.Err)
	case ViewMatches:
		res := v.Matches(ctx, v.BindTeam(ctx, req.Team))
		return tableOf(res.Rows, res.Err)
	case ViewPlayers:
		res := v.PlayerStats(ctx, v.BindTeam(ctx, req.Team))
		return tableOf(res.Rows, res.Err)
	case ViewTeamPerformance:
		team, ok := v.BindTeam(ctx, req.Team).Name()
		if !ok {
			return export.Table{}, fmt.Errorf("%s: a known team is required: %w", req.View, filter.ErrUnknownTeam)
		}
		res := v.TeamPerformance(ctx, team)
		return tableOf(res.Rows, res.Err)
	}
	return export.Table{}, fmt.Errorf("%q: %w", req.View, ErrUnknownView)
}

func tableOf[T export.Record](rows []T, qerr *QueryError) (export.Table, error) {
	if qerr != nil {
		return export.FromRows([]T{}), qerr
	}
	return export.FromRows(rows), nil
}
