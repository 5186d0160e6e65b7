package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

func intp(n int) *int { return &n }

func floatp(f float64) *float64 { return &f }

func strp(s string) *string { return &s }

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		gf, ga *int
		want   *query.Outcome
	}{
		{name: "win", gf: intp(2), ga: intp(1), want: ptr(query.Win)},
		{name: "draw", gf: intp(0), ga: intp(0), want: ptr(query.Draw)},
		{name: "loss", gf: intp(1), ga: intp(3), want: ptr(query.Loss)},
		{name: "missing for", gf: nil, ga: intp(1), want: nil},
		{name: "missing against", gf: intp(1), ga: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.Classify(tt.gf, tt.ga))
		})
	}
}

func ptr(o query.Outcome) *query.Outcome { return &o }

func TestOutcomeReverse(t *testing.T) {
	assert.Equal(t, query.Loss, query.Win.Reverse())
	assert.Equal(t, query.Win, query.Loss.Reverse())
	assert.Equal(t, query.Draw, query.Draw.Reverse())
}

func TestMatchRow_OutcomeFor(t *testing.T) {
	m := query.MatchRow{HomeTeam: "A", AwayTeam: "B", HomeGoals: 2, AwayGoals: 1, Result: ptr(query.Win)}

	assert.Equal(t, query.Win, *m.OutcomeFor("A"))
	assert.Equal(t, query.Loss, *m.OutcomeFor("B"))
	assert.Equal(t, query.Win, *m.OutcomeFor(""))

	m.Result = nil
	assert.Nil(t, m.OutcomeFor("B"))
	assert.Equal(t, 3, query.MatchRow{HomeGoals: 1, AwayGoals: 2}.TotalGoals())
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, query.DefaultScorerLimit, query.NormalizeLimit(0))
	assert.Equal(t, query.DefaultScorerLimit, query.NormalizeLimit(-5))
	assert.Equal(t, 20, query.NormalizeLimit(20))
	assert.Equal(t, query.MaxScorerLimit, query.NormalizeLimit(1000))
}

func TestCSVRecords(t *testing.T) {
	t.Run("team summary with null averages", func(t *testing.T) {
		r := query.TeamSummaryRow{TeamName: "C", Matches: 0, Players: 3}
		assert.Equal(t, []string{"C", "0", "3", "", ""}, r.CSVRecord())
		assert.Len(t, r.CSVHeader(), len(r.CSVRecord()))
	})

	t.Run("team summary averages", func(t *testing.T) {
		r := query.TeamSummaryRow{TeamName: "A", Matches: 4, Players: 11, AvgGoalsFor: floatp(1.75), AvgGoalsAgainst: floatp(0.5)}
		assert.Equal(t, []string{"A", "4", "11", "1.75", "0.5"}, r.CSVRecord())
	})

	t.Run("scorer without team", func(t *testing.T) {
		r := query.ScorerRow{PlayerName: "Free Agent", TotalGoals: 3, TotalAssists: 1, Appearances: 2}
		assert.Equal(t, []string{"Free Agent", "", "3", "1", "2"}, r.CSVRecord())
		assert.Len(t, r.CSVHeader(), len(r.CSVRecord()))
	})

	t.Run("match", func(t *testing.T) {
		r := query.MatchRow{
			MatchID:  7,
			Date:     time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
			HomeTeam: "A", AwayTeam: "B",
			HomeGoals: 1, AwayGoals: 1,
			Result: ptr(query.Draw),
		}
		assert.Equal(t, []string{"7", "2024-03-09", "A", "B", "1", "1", "Draw"}, r.CSVRecord())
		assert.Len(t, r.CSVHeader(), len(r.CSVRecord()))

		r.Result = nil
		assert.Equal(t, "", r.CSVRecord()[6])
	})

	t.Run("player stats", func(t *testing.T) {
		r := query.PlayerStatRow{Name: "Alice", TeamName: strp("A"), Position: strp("FW"), Appearances: 2, TotalGoals: 3, AvgRating: floatp(7.25), TotalPasses: 40}
		require.Len(t, r.CSVHeader(), 9)
		assert.Equal(t, []string{"Alice", "A", "FW", "", "2", "3", "0", "7.25", "40"}, r.CSVRecord())
	})

	t.Run("team performance", func(t *testing.T) {
		r := query.TeamPerformanceRow{TeamName: "A", Matches: 3, Wins: 2, Losses: 1, GoalsFor: 5, GoalsAgainst: 2}
		assert.Equal(t, []string{"A", "3", "2", "0", "1", "5", "2"}, r.CSVRecord())
		assert.Len(t, r.CSVHeader(), len(r.CSVRecord()))
	})

	t.Run("team name", func(t *testing.T) {
		assert.Equal(t, []string{"team_name"}, query.TeamName("A").CSVHeader())
		assert.Equal(t, []string{"A"}, query.TeamName("A").CSVRecord())
	})
}

func TestStatements(t *testing.T) {
	stmts := query.Statements()
	for _, name := range []string{
		query.StmtTeamSummary,
		query.StmtTopScorers,
		query.StmtMatchList,
		query.StmtPlayerStats,
		query.StmtTeamPerformance,
		query.StmtAllTeamNames,
	} {
		assert.NotEmpty(t, stmts[name], name)
	}
	assert.Len(t, stmts, 6)

	// Filtered views share one predicate shape and never embed values.
	assert.Contains(t, stmts[query.StmtMatchList], "$1::text IS NULL OR")
	assert.Contains(t, stmts[query.StmtPlayerStats], "$1::text IS NULL OR")
}
