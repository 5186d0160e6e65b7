//go:build integration

package query_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/filter"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/testinfra"
)

const reset = `TRUNCATE statistiquejoueur, resultatmatch, match, joueur, equipe RESTART IDENTITY CASCADE`

// league seeds three teams: A beat B 2-1 at home, B and A drew away from
// the record (only B's row exists, with text goals), C never played.
var league = []string{
	reset,
	`INSERT INTO equipe (id_equipe, nom_equipe) VALUES (1, 'A'), (2, 'B'), (3, 'C')`,
	`INSERT INTO joueur (id_joueur, nom_joueur, equipe_id, poste_principal, nationalite) VALUES
		(1, 'Alice', 1, 'FW', 'FR'),
		(2, 'Bob', 2, 'MF', 'ES'),
		(3, 'Carl', 1, 'GK', NULL),
		(4, 'Dora', 3, 'DF', 'MA')`,
	`INSERT INTO match (id_match, date_match, equipe_domicile_id, equipe_exterieur_id) VALUES
		(1, '2024-01-10', 1, 2),
		(2, '2024-02-01', 2, 1)`,
	`INSERT INTO resultatmatch (match_id, equipe_id, buts_marques, buts_contre) VALUES
		(1, 1, '2', '1'),
		(1, 2, '1', '2'),
		(2, 2, 'n/a', '0')`,
	`INSERT INTO statistiquejoueur (joueur_id, match_id, buts, passes_decisives, note, passes_reussies) VALUES
		(1, 1, '2', '0', '7.5', '30'),
		(1, 2, '1.0', 'x', '6.5', ''),
		(2, 1, '1', '1', 'bad', '41'),
		(4, 1, 'none', '0', NULL, '12')`,
}

func TestQueries_Integration(t *testing.T) {
	store := testinfra.StartPostgres(t)
	store.Exec(t, league...)
	reader := store.Reader(t)
	ctx := context.Background()

	t.Run("team performance from both sides", func(t *testing.T) {
		a, err := query.TeamPerformance(ctx, reader, "A")
		require.NoError(t, err)
		require.Len(t, a, 1)
		assert.Equal(t, query.TeamPerformanceRow{
			TeamName: "A", Matches: 2, Wins: 1, Draws: 0, Losses: 0, GoalsFor: 2, GoalsAgainst: 1,
		}, a[0])

		b, err := query.TeamPerformance(ctx, reader, "B")
		require.NoError(t, err)
		require.Len(t, b, 1)
		assert.Equal(t, query.TeamPerformanceRow{
			TeamName: "B", Matches: 2, Wins: 0, Draws: 0, Losses: 1, GoalsFor: 1, GoalsAgainst: 2,
		}, b[0])

		none, err := query.TeamPerformance(ctx, reader, "Nobody")
		require.NoError(t, err)
		assert.Empty(t, none)

		c, err := query.TeamPerformance(ctx, reader, "C")
		require.NoError(t, err)
		require.Len(t, c, 1)
		assert.Equal(t, 0, c[0].Matches)
	})

	t.Run("team summary keeps idle teams", func(t *testing.T) {
		rows, err := query.TeamSummary(ctx, reader)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "A", rows[0].TeamName)
		assert.Equal(t, 2, rows[0].Matches)
		assert.Equal(t, 2, rows[0].Players)
		require.NotNil(t, rows[0].AvgGoalsFor)
		assert.InDelta(t, 1.0, *rows[0].AvgGoalsFor, 1e-9)

		idle := rows[2]
		assert.Equal(t, "C", idle.TeamName)
		assert.Equal(t, 0, idle.Matches)
		assert.Equal(t, 1, idle.Players)
		assert.Nil(t, idle.AvgGoalsFor)
		assert.Nil(t, idle.AvgGoalsAgainst)
	})

	t.Run("top scorers", func(t *testing.T) {
		rows, err := query.TopScorers(ctx, reader, 10)
		require.NoError(t, err)
		require.Len(t, rows, 2, "Dora only has non-numeric goals")
		assert.Equal(t, "Alice", rows[0].PlayerName)
		assert.Equal(t, 3, rows[0].TotalGoals)
		assert.Equal(t, 2, rows[0].Appearances)
		assert.Equal(t, "Bob", rows[1].PlayerName)
		assert.Equal(t, 1, rows[1].TotalAssists)

		limited, err := query.TopScorers(ctx, reader, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("match list", func(t *testing.T) {
		rows, err := query.MatchList(ctx, reader, filter.NoFilter())
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, 2, rows[0].MatchID, "newest first")
		assert.Equal(t, 0, rows[0].HomeGoals)
		assert.Equal(t, 0, rows[0].AwayGoals)
		assert.Nil(t, rows[0].Result)

		assert.Equal(t, "A", rows[1].HomeTeam)
		assert.Equal(t, 2, rows[1].HomeGoals)
		assert.Equal(t, 1, rows[1].AwayGoals)
		require.NotNil(t, rows[1].Result)
		assert.Equal(t, query.Win, *rows[1].Result)

		onlyC, err := query.MatchList(ctx, reader, filter.ByTeam("C"))
		require.NoError(t, err)
		assert.Empty(t, onlyC)
	})

	t.Run("unknown filter behaves as unfiltered", func(t *testing.T) {
		names, err := query.AllTeamNames(ctx, reader)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, names)

		team, err := filter.Bind("Nonexistent FC", names)
		assert.ErrorIs(t, err, filter.ErrUnknownTeam)

		rows, err := query.MatchList(ctx, reader, team)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("player stats", func(t *testing.T) {
		rows, err := query.PlayerStats(ctx, reader, filter.ByTeam("A"))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		alice := rows[0]
		assert.Equal(t, "Alice", alice.Name)
		assert.Equal(t, 2, alice.Appearances)
		assert.Equal(t, 3, alice.TotalGoals)
		assert.Equal(t, 0, alice.TotalAssists)
		assert.Equal(t, 30, alice.TotalPasses)
		require.NotNil(t, alice.AvgRating)
		assert.InDelta(t, 7.0, *alice.AvgRating, 1e-9)

		carl := rows[1]
		assert.Equal(t, "Carl", carl.Name)
		assert.Equal(t, 0, carl.Appearances)
		assert.Equal(t, 0, carl.TotalGoals)
		assert.Equal(t, 0, carl.TotalAssists)
		assert.Nil(t, carl.AvgRating)
		assert.Nil(t, carl.Nationality)

		all, err := query.PlayerStats(ctx, reader, filter.NoFilter())
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("team names with quotes bind safely", func(t *testing.T) {
		store.Exec(t, `INSERT INTO equipe (id_equipe, nom_equipe) VALUES (4, 'O''Higgins')`)
		t.Cleanup(func() { store.Exec(t, `DELETE FROM equipe WHERE id_equipe = 4`) })

		rows, err := query.PlayerStats(ctx, reader, filter.ByTeam("O'Higgins"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("one result row per match", func(t *testing.T) {
		store.Exec(t,
			reset,
			`INSERT INTO equipe (id_equipe, nom_equipe) VALUES (1, 'A'), (2, 'B')`,
			`INSERT INTO match (id_match, date_match, equipe_domicile_id, equipe_exterieur_id) VALUES (1, '2024-01-10', 1, 2)`,
			`INSERT INTO resultatmatch (match_id, equipe_id, buts_marques, buts_contre) VALUES (1, 1, '2', '1')`,
		)

		b, err := query.TeamPerformance(ctx, reader, "B")
		require.NoError(t, err)
		require.Len(t, b, 1)
		assert.Equal(t, 1, b[0].Losses)
		assert.Equal(t, 1, b[0].GoalsFor)
		assert.Equal(t, 2, b[0].GoalsAgainst)
	})

	t.Run("reader rejects writes", func(t *testing.T) {
		_, err := reader.Exec(ctx, `INSERT INTO equipe (nom_equipe) VALUES ('Z')`)
		assert.Error(t, err)
	})
}

// TestQueries_OutOfRangeNumbersCoerceToNull stores numbers too large for
// their column type. Each one reads as NULL; the rest of the rows still
// aggregate.
func TestQueries_OutOfRangeNumbersCoerceToNull(t *testing.T) {
	store := testinfra.StartPostgres(t)
	hugeRating := "1" + strings.Repeat("0", 400)
	store.Exec(t,
		reset,
		`INSERT INTO equipe (id_equipe, nom_equipe) VALUES (1, 'A'), (2, 'B')`,
		`INSERT INTO joueur (id_joueur, nom_joueur, equipe_id) VALUES (1, 'Alice', 1)`,
		`INSERT INTO match (id_match, date_match, equipe_domicile_id, equipe_exterieur_id) VALUES
			(1, '2024-01-10', 1, 2),
			(2, '2024-02-01', 2, 1)`,
		`INSERT INTO resultatmatch (match_id, equipe_id, buts_marques, buts_contre) VALUES
			(1, 1, '99999999999', '0'),
			(1, 2, '0', '99999999999'),
			(2, 2, '1', '3'),
			(2, 1, '3', '1')`,
		`INSERT INTO statistiquejoueur (joueur_id, match_id, buts, passes_decisives, note, passes_reussies) VALUES
			(1, 1, '99999999999', '1', '`+hugeRating+`', '10'),
			(1, 2, '2', '0', '7', '20')`,
	)
	reader := store.Reader(t)
	ctx := context.Background()

	perf, err := query.TeamPerformance(ctx, reader, "A")
	require.NoError(t, err)
	require.Len(t, perf, 1)
	assert.Equal(t, query.TeamPerformanceRow{
		TeamName: "A", Matches: 2, Wins: 1, GoalsFor: 3, GoalsAgainst: 1,
	}, perf[0])

	summary, err := query.TeamSummary(ctx, reader)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "A", summary[0].TeamName)
	require.NotNil(t, summary[0].AvgGoalsFor)
	assert.InDelta(t, 3.0, *summary[0].AvgGoalsFor, 1e-9)
	require.NotNil(t, summary[0].AvgGoalsAgainst)
	assert.InDelta(t, 0.5, *summary[0].AvgGoalsAgainst, 1e-9)

	matches, err := query.MatchList(ctx, reader, filter.NoFilter())
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[1].MatchID)
	assert.Nil(t, matches[1].Result)
	require.NotNil(t, matches[0].Result)
	assert.Equal(t, query.Loss, *matches[0].Result)

	players, err := query.PlayerStats(ctx, reader, filter.NoFilter())
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, 2, players[0].Appearances)
	assert.Equal(t, 2, players[0].TotalGoals)
	assert.Equal(t, 1, players[0].TotalAssists)
	require.NotNil(t, players[0].AvgRating)
	assert.InDelta(t, 7.0, *players[0].AvgRating, 1e-9)

	scorers, err := query.TopScorers(ctx, reader, 10)
	require.NoError(t, err)
	require.Len(t, scorers, 1)
	assert.Equal(t, 2, scorers[0].TotalGoals)
}
