// Package derive computes the metrics that are not a single aggregate:
// rates, differences, running totals, distributions and league extremes.
// Every function accepts empty input and returns a defined zero state.
package derive

import (
	"cmp"
	"slices"
	"time"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

// Outcome labels a match result from one side.
type Outcome = query.Outcome

// Unknown counts matches whose goals could not be compared.
const Unknown Outcome = "Unknown"

// WinRate is wins over all decided and drawn matches, 0 when there are none.
func WinRate(wins, draws, losses int) float64 {
	total := wins + draws + losses
	if total <= 0 {
		return 0
	}
	return float64(wins) / float64(total)
}

// GoalDifference is goals scored minus goals conceded.
func GoalDifference(goalsFor, goalsAgainst int) int {
	return goalsFor - goalsAgainst
}

// PerformanceSummary is a TeamPerformance row with its derived columns.
type PerformanceSummary struct {
	query.TeamPerformanceRow
	GoalDifference int     `json:"goal_difference"`
	WinRate        float64 `json:"win_rate"`
}

// WinRatePercent is the win rate on a 0-100 scale.
func (p PerformanceSummary) WinRatePercent() float64 {
	return p.WinRate * 100
}

// Performance adds goal difference and win rate to a team record.
func Performance(row query.TeamPerformanceRow) PerformanceSummary {
	return PerformanceSummary{
		TeamPerformanceRow: row,
		GoalDifference:     GoalDifference(row.GoalsFor, row.GoalsAgainst),
		WinRate:            WinRate(row.Wins, row.Draws, row.Losses),
	}
}

// TrendPoint is one match on the cumulative goals line.
type TrendPoint struct {
	MatchID         int       `json:"match_id"`
	Date            time.Time `json:"date"`
	Goals           int       `json:"goals"`
	CumulativeGoals int       `json:"cumulative_goals"`
}

// CumulativeGoals orders matches oldest first and keeps a running sum of
// the goals of both sides. The input slice is not modified.
func CumulativeGoals(matches []query.MatchRow) []TrendPoint {
	sorted := slices.Clone(matches)
	slices.SortStableFunc(sorted, func(a, b query.MatchRow) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.MatchID, b.MatchID)
	})

	out := make([]TrendPoint, 0, len(sorted))
	total := 0
	for _, m := range sorted {
		total += m.TotalGoals()
		out = append(out, TrendPoint{
			MatchID:         m.MatchID,
			Date:            m.Date,
			Goals:           m.TotalGoals(),
			CumulativeGoals: total,
		})
	}
	return out
}

// OutcomeCount is one slice of a result distribution.
type OutcomeCount struct {
	Outcome Outcome `json:"outcome"`
	Count   int     `json:"count"`
}

var distributionOrder = []Outcome{query.Win, query.Draw, query.Loss, Unknown}

// ResultDistribution counts labels in the order Win, Draw, Loss, Unknown.
// Nil labels count as Unknown and labels that never occur are left out, so
// the counts always sum to len(labels).
func ResultDistribution(labels []*Outcome) []OutcomeCount {
	counts := make(map[Outcome]int, len(distributionOrder))
	for _, l := range labels {
		if l == nil {
			counts[Unknown]++
			continue
		}
		switch *l {
		case query.Win, query.Draw, query.Loss:
			counts[*l]++
		default:
			counts[Unknown]++
		}
	}

	out := []OutcomeCount{}
	for _, o := range distributionOrder {
		if n := counts[o]; n > 0 {
			out = append(out, OutcomeCount{Outcome: o, Count: n})
		}
	}
	return out
}

// MatchOutcomes returns the label of each match from the given team's side,
// or from the home side when team is empty.
func MatchOutcomes(matches []query.MatchRow, team string) []*Outcome {
	out := make([]*Outcome, len(matches))
	for i, m := range matches {
		out[i] = m.OutcomeFor(team)
	}
	return out
}

// TeamStat names a team and the value that made it stand out.
type TeamStat struct {
	TeamName string  `json:"team_name"`
	Value    float64 `json:"value"`
}

// LeagueSummary holds the extremes of a league overview. A field is nil
// when no row qualifies.
type LeagueSummary struct {
	MostMatches *TeamStat `json:"most_matches"`
	BestAttack  *TeamStat `json:"best_attack"`
	BestDefense *TeamStat `json:"best_defense"`
}

// LeagueExtremes finds the team with the most matches, the highest average
// goals for and the lowest average goals against. Null averages are skipped
// and ties keep the first row in the given order.
func LeagueExtremes(rows []query.TeamSummaryRow) LeagueSummary {
	var s LeagueSummary
	for _, r := range rows {
		if s.MostMatches == nil || float64(r.Matches) > s.MostMatches.Value {
			s.MostMatches = &TeamStat{TeamName: r.TeamName, Value: float64(r.Matches)}
		}
		if r.AvgGoalsFor != nil && (s.BestAttack == nil || *r.AvgGoalsFor > s.BestAttack.Value) {
			s.BestAttack = &TeamStat{TeamName: r.TeamName, Value: *r.AvgGoalsFor}
		}
		if r.AvgGoalsAgainst != nil && (s.BestDefense == nil || *r.AvgGoalsAgainst < s.BestDefense.Value) {
			s.BestDefense = &TeamStat{TeamName: r.TeamName, Value: *r.AvgGoalsAgainst}
		}
	}
	return s
}

// LeagueTotalsSummary is the headline of the dashboard.
type LeagueTotalsSummary struct {
	Teams           int     `json:"teams"`
	Players         int     `json:"players"`
	Matches         int     `json:"matches"`
	AvgGoalsPerTeam float64 `json:"avg_goals_per_team"`
}

// LeagueTotals sums a league overview. Every match is counted once per side,
// so the match total is halved. The goal average is the mean of the teams
// that have one, 0 when none does.
func LeagueTotals(rows []query.TeamSummaryRow) LeagueTotalsSummary {
	t := LeagueTotalsSummary{Teams: len(rows)}
	appearances, withAvg := 0, 0
	sum := 0.0
	for _, r := range rows {
		t.Players += r.Players
		appearances += r.Matches
		if r.AvgGoalsFor != nil {
			sum += *r.AvgGoalsFor
			withAvg++
		}
	}
	t.Matches = appearances / 2
	if withAvg > 0 {
		t.AvgGoalsPerTeam = sum / float64(withAvg)
	}
	return t
}

// MatchTotalsSummary is the headline of the matches page.
type MatchTotalsSummary struct {
	Matches          int     `json:"matches"`
	Goals            int     `json:"goals"`
	AvgGoalsPerMatch float64 `json:"avg_goals_per_match"`
}

// MatchTotals counts matches and goals, 0 average for no matches.
func MatchTotals(matches []query.MatchRow) MatchTotalsSummary {
	t := MatchTotalsSummary{Matches: len(matches)}
	for _, m := range matches {
		t.Goals += m.TotalGoals()
	}
	if t.Matches > 0 {
		t.AvgGoalsPerMatch = float64(t.Goals) / float64(t.Matches)
	}
	return t
}
