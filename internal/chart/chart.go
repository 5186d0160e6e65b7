// Package chart maps result tables to chart descriptors. A descriptor says
// what to draw; rendering belongs to the client.
package chart

import (
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/derive"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

// Type is the kind of chart to draw.
type Type string

const (
	Bar           Type = "bar"
	HorizontalBar Type = "barh"
	Pie           Type = "pie"
	Gauge         Type = "gauge"
	Line          Type = "line"
)

const (
	ColorRed    = "#ff6b6b"
	ColorYellow = "#ffd93d"
	ColorGreen  = "#6bcf7f"
)

// Limits on how many entries a chart shows.
const (
	TopTeams         = 10
	TopPlayers       = 10
	HomeGoalsMatches = 15
)

// Series is one set of values, aligned with the descriptor labels.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Step colors a range of a gauge axis.
type Step struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// GaugeSpec describes a single value on a bounded axis.
type GaugeSpec struct {
	Value     float64 `json:"value"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Reference float64 `json:"reference"`
	Steps     []Step  `json:"steps"`
}

// Descriptor is everything a client needs to draw one chart. When Empty is
// set the client shows Message as a placeholder instead.
type Descriptor struct {
	Type    Type       `json:"type"`
	Title   string     `json:"title"`
	XLabel  string     `json:"x_label,omitempty"`
	YLabel  string     `json:"y_label,omitempty"`
	Labels  []string   `json:"labels"`
	Series  []Series   `json:"series"`
	Colors  []string   `json:"colors,omitempty"`
	Gauge   *GaugeSpec `json:"gauge,omitempty"`
	Empty   bool       `json:"empty"`
	Message string     `json:"message,omitempty"`
}

const noData = "No data available"

// Placeholder is the descriptor shown when there is nothing to plot.
func Placeholder(t Type, title, message string) Descriptor {
	if message == "" {
		message = noData
	}
	return Descriptor{
		Type:    t,
		Title:   title,
		Labels:  []string{},
		Series:  []Series{},
		Empty:   true,
		Message: message,
	}
}

// TeamGoals is a grouped bar of average goals for and against of the first
// teams of a league overview.
func TeamGoals(rows []query.TeamSummaryRow) Descriptor {
	const title = "Top 10 Teams: Goals For vs Against"
	if len(rows) == 0 {
		return Placeholder(Bar, title, "")
	}
	rows = rows[:min(len(rows), TopTeams)]

	labels := make([]string, len(rows))
	goalsFor := make([]float64, len(rows))
	goalsAgainst := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.TeamName
		goalsFor[i] = valueOrZero(r.AvgGoalsFor)
		goalsAgainst[i] = valueOrZero(r.AvgGoalsAgainst)
	}
	return Descriptor{
		Type:   Bar,
		Title:  title,
		XLabel: "Team",
		YLabel: "Average Goals",
		Labels: labels,
		Series: []Series{
			{Name: "avg_goals_for", Values: goalsFor},
			{Name: "avg_goals_against", Values: goalsAgainst},
		},
	}
}

// TopScorers is a horizontal bar of goals per player.
func TopScorers(rows []query.ScorerRow) Descriptor {
	const title = "Top Scorers"
	if len(rows) == 0 {
		return Placeholder(HorizontalBar, title, "")
	}
	labels := make([]string, len(rows))
	goals := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.PlayerName
		goals[i] = float64(r.TotalGoals)
	}
	return Descriptor{
		Type:   HorizontalBar,
		Title:  title,
		XLabel: "Goals",
		YLabel: "Player",
		Labels: labels,
		Series: []Series{{Name: "total_goals", Values: goals}},
		Colors: []string{ColorRed},
	}
}

// HomeGoals is a bar of the goals scored by the home side of the first
// matches of a list.
func HomeGoals(matches []query.MatchRow) Descriptor {
	const title = "Goals Scored by Home Teams"
	if len(matches) == 0 {
		return Placeholder(Bar, title, "")
	}
	matches = matches[:min(len(matches), HomeGoalsMatches)]

	labels := make([]string, len(matches))
	goals := make([]float64, len(matches))
	for i, m := range matches {
		labels[i] = m.HomeTeam
		goals[i] = float64(m.HomeGoals)
	}
	return Descriptor{
		Type:   Bar,
		Title:  title,
		XLabel: "Team",
		YLabel: "Goals",
		Labels: labels,
		Series: []Series{{Name: "home_goals", Values: goals}},
	}
}

// WinRateGauge shows a team's win rate in percent against a 50% reference.
// A team with no matches shows 0.
func WinRateGauge(p derive.PerformanceSummary) Descriptor {
	return Descriptor{
		Type:   Gauge,
		Title:  "Win Rate (%)",
		Labels: []string{p.TeamName},
		Series: []Series{{Name: "win_rate", Values: []float64{p.WinRatePercent()}}},
		Gauge: &GaugeSpec{
			Value:     p.WinRatePercent(),
			Min:       0,
			Max:       100,
			Reference: 50,
			Steps: []Step{
				{From: 0, To: 33, Color: ColorRed},
				{From: 33, To: 66, Color: ColorYellow},
				{From: 66, To: 100, Color: ColorGreen},
			},
		},
	}
}

var outcomeColors = map[derive.Outcome]string{
	query.Win:      ColorGreen,
	query.Draw:     ColorYellow,
	query.Loss:     ColorRed,
	derive.Unknown: "#b0b0b0",
}

// ResultDistribution is a pie of match results.
func ResultDistribution(counts []derive.OutcomeCount) Descriptor {
	const title = "Match Results Distribution"
	if len(counts) == 0 {
		return Placeholder(Pie, title, "")
	}
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	colors := make([]string, len(counts))
	for i, c := range counts {
		labels[i] = string(c.Outcome)
		values[i] = float64(c.Count)
		colors[i] = outcomeColors[c.Outcome]
	}
	return Descriptor{
		Type:   Pie,
		Title:  title,
		Labels: labels,
		Series: []Series{{Name: "matches", Values: values}},
		Colors: colors,
	}
}

// GoalTrend is a line of cumulative goals by match date.
func GoalTrend(points []derive.TrendPoint) Descriptor {
	const title = "Cumulative Goals Over Season"
	if len(points) == 0 {
		return Placeholder(Line, title, "")
	}
	labels := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Date.Format(query.DateLayout)
		values[i] = float64(p.CumulativeGoals)
	}
	return Descriptor{
		Type:   Line,
		Title:  title,
		XLabel: "Date",
		YLabel: "Total Goals",
		Labels: labels,
		Series: []Series{{Name: "cumulative_goals", Values: values}},
	}
}

// PlayerComparison is a grouped bar of goals and assists of the first
// scorers.
func PlayerComparison(rows []query.ScorerRow) Descriptor {
	const title = "Top 10 Players: Goals vs Assists"
	if len(rows) == 0 {
		return Placeholder(Bar, title, "")
	}
	rows = rows[:min(len(rows), TopPlayers)]

	labels := make([]string, len(rows))
	goals := make([]float64, len(rows))
	assists := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.PlayerName
		goals[i] = float64(r.TotalGoals)
		assists[i] = float64(r.TotalAssists)
	}
	return Descriptor{
		Type:   Bar,
		Title:  title,
		XLabel: "Player",
		YLabel: "Count",
		Labels: labels,
		Series: []Series{
			{Name: "total_goals", Values: goals},
			{Name: "total_assists", Values: assists},
		},
	}
}

func valueOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
