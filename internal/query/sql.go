package query

import "github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/config"

// Prepared statement names. Each is registered on every pooled connection.
const (
	StmtTeamSummary     = "team_summary"
	StmtTopScorers      = "top_scorers"
	StmtMatchList       = "match_list"
	StmtPlayerStats     = "player_stats"
	StmtTeamPerformance = "team_performance"
	StmtAllTeamNames    = "all_team_names"
)

// Patterns of text that casts safely. Anything else, including numbers too
// large for the target type, coerces to NULL instead of failing the
// statement. Leading zeros do not count toward the bound.
const (
	// at most 9 integer digits: rounds into an integer
	intPattern = `'^[+-]?(0*[0-9]{1,9}(\.[0-9]{0,100})?|\.[0-9]{1,100})$'`
	// at most 15 integer digits: averages in numeric, reads back as a double
	decimalPattern = `'^[+-]?(0*[0-9]{1,15}(\.[0-9]{0,100})?|\.[0-9]{1,100})$'`
)

// intOrNull rounds a text column to an integer, or NULL when it is not a
// number in range.
func intOrNull(col string) string {
	return "CASE WHEN btrim(" + col + "::text) ~ " + intPattern +
		" THEN round(btrim(" + col + "::text)::numeric)::integer END"
}

// decimalOrNull casts a text column to numeric, or NULL when it is not a
// number in range.
func decimalOrNull(col string) string {
	return "CASE WHEN btrim(" + col + "::text) ~ " + decimalPattern +
		" THEN btrim(" + col + "::text)::numeric END"
}

// teamResultsCTE yields one row per (team, match) the team played, home or
// away, with goals from that team's perspective. The team's own result row is
// preferred; otherwise the opponent's row is read with the sides swapped, so
// stores with one result row per match work as well as two.
var teamResultsCTE = `team_results AS (
	SELECT
		t.id_equipe,
		m.id_match,
		CASE WHEN own.match_id IS NOT NULL THEN own.goals_for ELSE opp.goals_against END AS goals_for,
		CASE WHEN own.match_id IS NOT NULL THEN own.goals_against ELSE opp.goals_for END AS goals_against
	FROM ` + config.TeamsTable + ` t
	JOIN ` + config.MatchesTable + ` m
		ON t.id_equipe IN (m.equipe_domicile_id, m.equipe_exterieur_id)
	LEFT JOIN LATERAL (
		SELECT r.match_id,
			` + intOrNull("r.buts_marques") + ` AS goals_for,
			` + intOrNull("r.buts_contre") + ` AS goals_against
		FROM ` + config.ResultsTable + ` r
		WHERE r.match_id = m.id_match AND r.equipe_id = t.id_equipe
		LIMIT 1
	) own ON true
	LEFT JOIN LATERAL (
		SELECT
			` + intOrNull("r.buts_marques") + ` AS goals_for,
			` + intOrNull("r.buts_contre") + ` AS goals_against
		FROM ` + config.ResultsTable + ` r
		WHERE r.match_id = m.id_match AND r.equipe_id IS DISTINCT FROM t.id_equipe
		LIMIT 1
	) opp ON true
)`

// playerStatsCTE coerces the per-appearance statistics once.
var playerStatsCTE = `appearances AS (
	SELECT
		s.id_statistique_joueur,
		s.joueur_id,
		` + intOrNull("s.buts") + ` AS goals,
		` + intOrNull("s.passes_decisives") + ` AS assists,
		` + decimalOrNull("s.note") + ` AS rating,
		` + intOrNull("s.passes_reussies") + ` AS passes
	FROM ` + config.PlayerStatsTable + ` s
)`

var teamSummarySQL = `
WITH ` + teamResultsCTE + `,
squads AS (
	SELECT equipe_id, COUNT(DISTINCT id_joueur) AS players
	FROM ` + config.PlayersTable + `
	GROUP BY equipe_id
)
SELECT
	t.nom_equipe AS team_name,
	COUNT(DISTINCT tr.id_match) AS matches,
	COALESCE(MAX(sq.players), 0) AS players,
	ROUND(AVG(tr.goals_for)::numeric, 2)::double precision AS avg_goals_for,
	ROUND(AVG(tr.goals_against)::numeric, 2)::double precision AS avg_goals_against
FROM ` + config.TeamsTable + ` t
LEFT JOIN team_results tr ON tr.id_equipe = t.id_equipe
LEFT JOIN squads sq ON sq.equipe_id = t.id_equipe
GROUP BY t.id_equipe, t.nom_equipe
ORDER BY matches DESC, team_name, t.id_equipe`

var topScorersSQL = `
WITH ` + playerStatsCTE + `
SELECT
	p.nom_joueur AS player_name,
	t.nom_equipe AS team_name,
	SUM(a.goals) AS total_goals,
	COALESCE(SUM(a.assists), 0) AS total_assists,
	COUNT(DISTINCT a.id_statistique_joueur) AS appearances
FROM ` + config.PlayersTable + ` p
JOIN appearances a ON a.joueur_id = p.id_joueur
LEFT JOIN ` + config.TeamsTable + ` t ON t.id_equipe = p.equipe_id
GROUP BY p.id_joueur, p.nom_joueur, t.nom_equipe
HAVING COUNT(a.goals) > 0
ORDER BY total_goals DESC, player_name, p.id_joueur
LIMIT $1`

var matchListSQL = `
WITH ` + teamResultsCTE + `
SELECT
	m.id_match AS match_id,
	m.date_match::date AS match_date,
	h.nom_equipe AS home_team,
	a.nom_equipe AS away_team,
	hr.goals_for AS home_goals,
	hr.goals_against AS away_goals
FROM ` + config.MatchesTable + ` m
JOIN ` + config.TeamsTable + ` h ON h.id_equipe = m.equipe_domicile_id
JOIN ` + config.TeamsTable + ` a ON a.id_equipe = m.equipe_exterieur_id
LEFT JOIN team_results hr
	ON hr.id_match = m.id_match AND hr.id_equipe = m.equipe_domicile_id
WHERE ($1::text IS NULL OR h.nom_equipe = $1::text OR a.nom_equipe = $1::text)
ORDER BY m.date_match DESC, m.id_match DESC`

var playerStatsSQL = `
WITH ` + playerStatsCTE + `
SELECT
	p.nom_joueur AS player_name,
	t.nom_equipe AS team_name,
	p.poste_principal AS position,
	p.nationalite AS nationality,
	COUNT(DISTINCT a.id_statistique_joueur) AS appearances,
	COALESCE(SUM(a.goals), 0) AS total_goals,
	COALESCE(SUM(a.assists), 0) AS total_assists,
	ROUND(AVG(a.rating), 2)::double precision AS avg_rating,
	COALESCE(SUM(a.passes), 0) AS total_passes
FROM ` + config.PlayersTable + ` p
LEFT JOIN ` + config.TeamsTable + ` t ON t.id_equipe = p.equipe_id
LEFT JOIN appearances a ON a.joueur_id = p.id_joueur
WHERE ($1::text IS NULL OR t.nom_equipe = $1::text)
GROUP BY p.id_joueur, p.nom_joueur, t.nom_equipe, p.poste_principal, p.nationalite
ORDER BY total_goals DESC, player_name, p.id_joueur`

var teamPerformanceSQL = `
WITH ` + teamResultsCTE + `
SELECT
	t.nom_equipe AS team_name,
	COUNT(DISTINCT tr.id_match) AS matches,
	COUNT(*) FILTER (WHERE tr.goals_for > tr.goals_against) AS wins,
	COUNT(*) FILTER (WHERE tr.goals_for = tr.goals_against) AS draws,
	COUNT(*) FILTER (WHERE tr.goals_for < tr.goals_against) AS losses,
	COALESCE(SUM(tr.goals_for), 0) AS goals_for,
	COALESCE(SUM(tr.goals_against), 0) AS goals_against
FROM ` + config.TeamsTable + ` t
LEFT JOIN team_results tr ON tr.id_equipe = t.id_equipe
WHERE t.nom_equipe = $1::text
GROUP BY t.id_equipe, t.nom_equipe`

var allTeamNamesSQL = `
SELECT DISTINCT nom_equipe
FROM ` + config.TeamsTable + `
WHERE nom_equipe IS NOT NULL
ORDER BY nom_equipe`

// Statements returns every statement of the library keyed by its prepared
// statement name.
func Statements() map[string]string {
	return map[string]string{
		StmtTeamSummary:     teamSummarySQL,
		StmtTopScorers:      topScorersSQL,
		StmtMatchList:       matchListSQL,
		StmtPlayerStats:     playerStatsSQL,
		StmtTeamPerformance: teamPerformanceSQL,
		StmtAllTeamNames:    allTeamNamesSQL,
	}
}
