package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/analytics"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/filter"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

// stubViews answers from memory and records the filters it was given.
type stubViews struct {
	names       []string
	matches     []query.MatchRow
	failMatches bool
	gotTeam     filter.Team
	gotLimit    int
}

func (s *stubViews) TeamNames(context.Context) analytics.Result[string] {
	return analytics.Result[string]{Rows: s.names}
}

func (s *stubViews) TeamSummary(context.Context) analytics.Result[query.TeamSummaryRow] {
	return analytics.Result[query.TeamSummaryRow]{Rows: []query.TeamSummaryRow{{TeamName: "A", Matches: 1}}}
}

func (s *stubViews) TopScorers(_ context.Context, limit int) analytics.Result[query.ScorerRow] {
	s.gotLimit = limit
	return analytics.Result[query.ScorerRow]{Rows: []query.ScorerRow{{PlayerName: "Alice", TotalGoals: 3}}}
}

func (s *stubViews) Matches(_ context.Context, team filter.Team) analytics.Result[query.MatchRow] {
	s.gotTeam = team
	if s.failMatches {
		return analytics.Result[query.MatchRow]{Rows: []query.MatchRow{}, Err: &analytics.QueryError{Op: "match_list", Kind: analytics.KindTimeout, Err: context.DeadlineExceeded}}
	}
	return analytics.Result[query.MatchRow]{Rows: s.matches}
}

func (s *stubViews) PlayerStats(_ context.Context, team filter.Team) analytics.Result[query.PlayerStatRow] {
	s.gotTeam = team
	return analytics.Result[query.PlayerStatRow]{Rows: []query.PlayerStatRow{{Name: "Alice"}, {Name: "Carl"}}}
}

func (s *stubViews) TeamPerformance(_ context.Context, team string) analytics.Result[query.TeamPerformanceRow] {
	return analytics.Result[query.TeamPerformanceRow]{Rows: []query.TeamPerformanceRow{{TeamName: team, Matches: 1, Wins: 1}}}
}

func (s *stubViews) BindTeam(_ context.Context, selected string) filter.Team {
	team, _ := filter.Bind(selected, s.names)
	return team
}

func TestExportTable(t *testing.T) {
	ctx := context.Background()

	t.Run("teams", func(t *testing.T) {
		v := &stubViews{names: []string{"A", "B"}}
		table, err := analytics.ExportTable(ctx, v, analytics.ExportRequest{View: analytics.ViewTeams})
		require.NoError(t, err)
		assert.Equal(t, []string{"team_name"}, table.Columns)
		assert.Equal(t, [][]string{{"A"}, {"B"}}, table.Rows)
	})

	t.Run("players bound to known team", func(t *testing.T) {
		v := &stubViews{names: []string{"A"}}
		table, err := analytics.ExportTable(ctx, v, analytics.ExportRequest{View: analytics.ViewPlayers, Team: "A"})
		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())
		assert.True(t, v.gotTeam.IsSet())
	})

	t.Run("unknown team exports unfiltered", func(t *testing.T) {
		v := &stubViews{names: []string{"A"}}
		_, err := analytics.ExportTable(ctx, v, analytics.ExportRequest{View: analytics.ViewMatches, Team: "Nonexistent FC"})
		require.NoError(t, err)
		assert.False(t, v.gotTeam.IsSet())
	})

	t.Run("top scorers limit passed through", func(t *testing.T) {
		v := &stubViews{}
		_, err := analytics.ExportTable(ctx, v, analytics.ExportRequest{View: analytics.ViewTopScorers, Limit: 25})
		require.NoError(t, err)
		assert.Equal(t, 25, v.gotLimit)
	})

	t.Run("team performance needs a team", func(t *testing.T) {
		v := &stubViews{names: []string{"A"}}
		_, err := analytics.ExportTable(ctx, v, analytics.ExportRequest{View: analytics.ViewTeamPerformance})
		assert.ErrorIs(t, err, filter.ErrUnknownTeam)

		table, err := analytics.ExportTable(ctx, v, analytics.ExportRequest{View: analytics.ViewTeamPerformance, Team: "A"})
		require.NoError(t, err)
		assert.Equal(t, "A", table.Rows[0][0])
	})

	t.Run("failed query keeps the header", func(t *testing.T) {
		v := &stubViews{failMatches: true}
		table, err := analytics.ExportTable(ctx, v, analytics.ExportRequest{View: analytics.ViewMatches})
		var qerr *analytics.QueryError
		require.ErrorAs(t, err, &qerr)
		assert.Equal(t, analytics.KindTimeout, qerr.Kind)
		assert.NotEmpty(t, table.Columns)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("unknown view", func(t *testing.T) {
		_, err := analytics.ExportTable(ctx, &stubViews{}, analytics.ExportRequest{View: "fixtures"})
		assert.True(t, errors.Is(err, analytics.ErrUnknownView))
	})

	t.Run("every listed view is accepted", func(t *testing.T) {
		v := &stubViews{names: []string{"A"}}
		for _, view := range analytics.ExportViews {
			_, err := analytics.ExportTable(ctx, v, analytics.ExportRequest{View: view, Team: "A"})
			assert.NoError(t, err, view)
		}
	})
}
