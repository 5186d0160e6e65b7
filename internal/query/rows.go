package query

import (
	"strconv"
	"time"
)

// DateLayout is how match dates are rendered in tables and exports.
const DateLayout = "2006-01-02"

// TeamSummaryRow is one team of the league overview. Averages are nil for a
// team without any numeric result.
type TeamSummaryRow struct {
	TeamName        string   `db:"team_name" json:"team_name"`
	Matches         int      `db:"matches" json:"matches"`
	Players         int      `db:"players" json:"players"`
	AvgGoalsFor     *float64 `db:"avg_goals_for" json:"avg_goals_for"`
	AvgGoalsAgainst *float64 `db:"avg_goals_against" json:"avg_goals_against"`
}

func (TeamSummaryRow) CSVHeader() []string {
	return []string{"team_name", "matches", "players", "avg_goals_for", "avg_goals_against"}
}

func (r TeamSummaryRow) CSVRecord() []string {
	return []string{
		r.TeamName,
		strconv.Itoa(r.Matches),
		strconv.Itoa(r.Players),
		formatFloat(r.AvgGoalsFor),
		formatFloat(r.AvgGoalsAgainst),
	}
}

// ScorerRow is one entry of the scoring leaders.
type ScorerRow struct {
	PlayerName   string  `db:"player_name" json:"player_name"`
	TeamName     *string `db:"team_name" json:"team_name"`
	TotalGoals   int     `db:"total_goals" json:"total_goals"`
	TotalAssists int     `db:"total_assists" json:"total_assists"`
	Appearances  int     `db:"appearances" json:"appearances"`
}

func (ScorerRow) CSVHeader() []string {
	return []string{"player_name", "team_name", "total_goals", "total_assists", "appearances"}
}

func (r ScorerRow) CSVRecord() []string {
	return []string{
		r.PlayerName,
		formatString(r.TeamName),
		strconv.Itoa(r.TotalGoals),
		strconv.Itoa(r.TotalAssists),
		strconv.Itoa(r.Appearances),
	}
}

// MatchRow is one fixture. Missing goals read as 0; Result stays nil unless
// both sides had a numeric value, and is seen from the home side.
type MatchRow struct {
	MatchID   int       `json:"match_id"`
	Date      time.Time `json:"date"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeGoals int       `json:"home_goals"`
	AwayGoals int       `json:"away_goals"`
	Result    *Outcome  `json:"result"`
}

// OutcomeFor returns the result from the given team's side. Matches the team
// did not play keep the home-side label.
func (r MatchRow) OutcomeFor(team string) *Outcome {
	if r.Result == nil || team == "" || team != r.AwayTeam {
		return r.Result
	}
	o := r.Result.Reverse()
	return &o
}

// TotalGoals is the number of goals scored by both sides.
func (r MatchRow) TotalGoals() int {
	return r.HomeGoals + r.AwayGoals
}

func (MatchRow) CSVHeader() []string {
	return []string{"match_id", "date", "home_team", "away_team", "home_goals", "away_goals", "result"}
}

func (r MatchRow) CSVRecord() []string {
	result := ""
	if r.Result != nil {
		result = string(*r.Result)
	}
	return []string{
		strconv.Itoa(r.MatchID),
		r.Date.Format(DateLayout),
		r.HomeTeam,
		r.AwayTeam,
		strconv.Itoa(r.HomeGoals),
		strconv.Itoa(r.AwayGoals),
		result,
	}
}

// matchRecord is the raw match_list row before goals are defaulted.
type matchRecord struct {
	MatchID   int       `db:"match_id"`
	MatchDate time.Time `db:"match_date"`
	HomeTeam  string    `db:"home_team"`
	AwayTeam  string    `db:"away_team"`
	HomeGoals *int      `db:"home_goals"`
	AwayGoals *int      `db:"away_goals"`
}

func (m matchRecord) row() MatchRow {
	return MatchRow{
		MatchID:   m.MatchID,
		Date:      m.MatchDate,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeGoals: intOrZero(m.HomeGoals),
		AwayGoals: intOrZero(m.AwayGoals),
		Result:    Classify(m.HomeGoals, m.AwayGoals),
	}
}

// PlayerStatRow is the season line of one player. Sums skip non-numeric
// values; AvgRating is nil when no appearance had a numeric rating.
type PlayerStatRow struct {
	Name         string   `db:"player_name" json:"name"`
	TeamName     *string  `db:"team_name" json:"team_name"`
	Position     *string  `db:"position" json:"position"`
	Nationality  *string  `db:"nationality" json:"nationality"`
	Appearances  int      `db:"appearances" json:"appearances"`
	TotalGoals   int      `db:"total_goals" json:"total_goals"`
	TotalAssists int      `db:"total_assists" json:"total_assists"`
	AvgRating    *float64 `db:"avg_rating" json:"avg_rating"`
	TotalPasses  int      `db:"total_passes" json:"total_passes"`
}

func (PlayerStatRow) CSVHeader() []string {
	return []string{
		"name", "team_name", "position", "nationality", "appearances",
		"total_goals", "total_assists", "avg_rating", "total_passes",
	}
}

func (r PlayerStatRow) CSVRecord() []string {
	return []string{
		r.Name,
		formatString(r.TeamName),
		formatString(r.Position),
		formatString(r.Nationality),
		strconv.Itoa(r.Appearances),
		strconv.Itoa(r.TotalGoals),
		strconv.Itoa(r.TotalAssists),
		formatFloat(r.AvgRating),
		strconv.Itoa(r.TotalPasses),
	}
}

// TeamPerformanceRow is the record of one team across home and away matches.
// Matches without numeric goals count in Matches but in no result bucket.
type TeamPerformanceRow struct {
	TeamName     string `db:"team_name" json:"team_name"`
	Matches      int    `db:"matches" json:"matches"`
	Wins         int    `db:"wins" json:"wins"`
	Draws        int    `db:"draws" json:"draws"`
	Losses       int    `db:"losses" json:"losses"`
	GoalsFor     int    `db:"goals_for" json:"goals_for"`
	GoalsAgainst int    `db:"goals_against" json:"goals_against"`
}

func (TeamPerformanceRow) CSVHeader() []string {
	return []string{"team_name", "matches", "wins", "draws", "losses", "goals_for", "goals_against"}
}

func (r TeamPerformanceRow) CSVRecord() []string {
	return []string{
		r.TeamName,
		strconv.Itoa(r.Matches),
		strconv.Itoa(r.Wins),
		strconv.Itoa(r.Draws),
		strconv.Itoa(r.Losses),
		strconv.Itoa(r.GoalsFor),
		strconv.Itoa(r.GoalsAgainst),
	}
}

// TeamName wraps a name of AllTeamNames so the list exports like any other view.
type TeamName string

func (TeamName) CSVHeader() []string { return []string{"team_name"} }

func (n TeamName) CSVRecord() []string { return []string{string(n)} }

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
