package chart_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/chart"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/derive"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

func f(v float64) *float64 { return &v }

func TestEmptyInputsArePlaceholders(t *testing.T) {
	for name, d := range map[string]chart.Descriptor{
		"team goals":   chart.TeamGoals(nil),
		"top scorers":  chart.TopScorers(nil),
		"home goals":   chart.HomeGoals(nil),
		"distribution": chart.ResultDistribution(nil),
		"trend":        chart.GoalTrend(nil),
		"comparison":   chart.PlayerComparison(nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, d.Empty)
			assert.NotEmpty(t, d.Message)
			assert.NotEmpty(t, d.Title)
			assert.NotNil(t, d.Labels)
			assert.NotNil(t, d.Series)
		})
	}
}

func TestTeamGoals(t *testing.T) {
	rows := make([]query.TeamSummaryRow, 12)
	for i := range rows {
		rows[i] = query.TeamSummaryRow{TeamName: fmt.Sprintf("T%d", i), AvgGoalsFor: f(float64(i))}
	}
	d := chart.TeamGoals(rows)

	assert.Equal(t, chart.Bar, d.Type)
	assert.False(t, d.Empty)
	assert.Len(t, d.Labels, chart.TopTeams)
	require.Len(t, d.Series, 2)
	assert.Equal(t, 3.0, d.Series[0].Values[3])
	assert.Equal(t, 0.0, d.Series[1].Values[3], "null averages plot as zero")
}

func TestHomeGoals_FirstMatchesOnly(t *testing.T) {
	matches := make([]query.MatchRow, 20)
	for i := range matches {
		matches[i] = query.MatchRow{HomeTeam: "A", HomeGoals: i}
	}
	d := chart.HomeGoals(matches)
	assert.Len(t, d.Labels, chart.HomeGoalsMatches)
	assert.Equal(t, 14.0, d.Series[0].Values[14])
}

func TestWinRateGauge(t *testing.T) {
	p := derive.Performance(query.TeamPerformanceRow{TeamName: "A", Matches: 4, Wins: 3, Losses: 1})
	d := chart.WinRateGauge(p)

	require.NotNil(t, d.Gauge)
	assert.Equal(t, chart.Gauge, d.Type)
	assert.InDelta(t, 75.0, d.Gauge.Value, 1e-9)
	assert.Equal(t, 50.0, d.Gauge.Reference)
	assert.Equal(t, 100.0, d.Gauge.Max)
	require.Len(t, d.Gauge.Steps, 3)
	assert.Equal(t, chart.ColorGreen, d.Gauge.Steps[2].Color)

	idle := chart.WinRateGauge(derive.Performance(query.TeamPerformanceRow{TeamName: "C"}))
	assert.Equal(t, 0.0, idle.Gauge.Value)
}

func TestResultDistribution(t *testing.T) {
	d := chart.ResultDistribution([]derive.OutcomeCount{
		{Outcome: query.Win, Count: 2},
		{Outcome: query.Loss, Count: 1},
	})
	assert.Equal(t, chart.Pie, d.Type)
	assert.Equal(t, []string{"Win", "Loss"}, d.Labels)
	assert.Equal(t, []string{chart.ColorGreen, chart.ColorRed}, d.Colors)
	assert.Equal(t, []float64{2, 1}, d.Series[0].Values)
}

func TestGoalTrend(t *testing.T) {
	d := chart.GoalTrend([]derive.TrendPoint{
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), CumulativeGoals: 3},
		{Date: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), CumulativeGoals: 4},
	})
	assert.Equal(t, chart.Line, d.Type)
	assert.Equal(t, []string{"2024-01-05", "2024-01-12"}, d.Labels)
	assert.Equal(t, []float64{3, 4}, d.Series[0].Values)
}

func TestScorerCharts(t *testing.T) {
	rows := make([]query.ScorerRow, 15)
	for i := range rows {
		rows[i] = query.ScorerRow{PlayerName: fmt.Sprintf("P%d", i), TotalGoals: 15 - i, TotalAssists: i}
	}

	top := chart.TopScorers(rows)
	assert.Equal(t, chart.HorizontalBar, top.Type)
	assert.Len(t, top.Labels, 15)

	cmp := chart.PlayerComparison(rows)
	assert.Len(t, cmp.Labels, chart.TopPlayers)
	require.Len(t, cmp.Series, 2)
	assert.Equal(t, 15.0, cmp.Series[0].Values[0])
	assert.Equal(t, 9.0, cmp.Series[1].Values[9])
}
