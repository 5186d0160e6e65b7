package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/api/respond"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/chart"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/derive"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/filter"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

// Analysis types.
const (
	AnalysisLeagueOverview   = "league-overview"
	AnalysisTeamComparison   = "team-comparison"
	AnalysisPlayerComparison = "player-comparison"
	AnalysisGoalTrends       = "goal-trends"
)

const (
	comparisonDefaultTeams = 3
	comparisonPlayers      = 15
)

// Analysis serves one of the advanced analysis pages.
// @Summary Advanced analysis
// @Description league-overview, team-comparison (repeat ?team=), player-comparison or goal-trends (?team=).
// @Tags pages
// @Produce json
// @Param type path string true "Analysis type" Enums(league-overview, team-comparison, player-comparison, goal-trends)
// @Param team query []string false "Team filter; repeatable for team-comparison"
// @Success 200 {object} Page
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/analysis/{type} [get]
func (h *Handler) Analysis(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "type")
	var page Page
	switch kind {
	case AnalysisLeagueOverview:
		page = h.leagueOverview(r)
	case AnalysisTeamComparison:
		page = h.teamComparison(r)
	case AnalysisPlayerComparison:
		page = h.playerComparison(r)
	case AnalysisGoalTrends:
		page = h.goalTrends(r)
	default:
		respond.WriteErrorDetail(w, http.StatusNotFound, "UNKNOWN_ANALYSIS",
			fmt.Sprintf("Unknown analysis type %q", kind),
			"expected one of league-overview, team-comparison, player-comparison, goal-trends")
		return
	}
	page.Page = kind
	respond.WriteJSONObject(w, http.StatusOK, page)
}

func (h *Handler) leagueOverview(r *http.Request) Page {
	summary := h.views.TeamSummary(r.Context())
	diag := summary.Diagnostic()
	return Page{
		Filter: filter.AllTeams,
		Panels: []Panel{
			metricsPanel("League Leaders", derive.LeagueExtremes(summary.Rows), diag),
			chartPanel(chart.TeamGoals(summary.Rows), diag),
			tablePanel("League Overview", summary),
		},
	}
}

// teamComparison compares the selected teams, or the first three. Teams are
// queried one after the other.
func (h *Handler) teamComparison(r *http.Request) Page {
	ctx := r.Context()
	page := Page{Filter: filter.AllTeams}

	names := h.views.TeamNames(ctx)
	if !names.OK() {
		page.Panels = []Panel{tablePanel("Team Comparison", names)}
		return page
	}

	selected := r.URL.Query()["team"]
	if len(selected) == 0 {
		selected = names.Rows[:min(len(names.Rows), comparisonDefaultTeams)]
	}

	rows := []derive.PerformanceSummary{}
	var skipped []string
	diag := ""
	for _, s := range selected {
		team, err := filter.Bind(s, names.Rows)
		name, ok := team.Name()
		if !ok {
			if err != nil {
				skipped = append(skipped, s)
			}
			continue
		}
		perf := h.views.TeamPerformance(ctx, name)
		if !perf.OK() {
			diag = firstDiagnostic(diag, perf.Diagnostic())
			continue
		}
		row, found := perf.First()
		if !found {
			row = query.TeamPerformanceRow{TeamName: name}
		}
		rows = append(rows, derive.Performance(row))
	}
	if len(skipped) > 0 {
		page.Notice = fmt.Sprintf("Unknown teams ignored: %q", skipped)
	}
	page.Panels = []Panel{{Title: "Team Comparison", Table: rows, Diagnostic: diag}}
	return page
}

func (h *Handler) playerComparison(r *http.Request) Page {
	scorers := h.views.TopScorers(r.Context(), comparisonPlayers)
	return Page{
		Filter: filter.AllTeams,
		Panels: []Panel{
			chartPanel(chart.PlayerComparison(scorers.Rows), scorers.Diagnostic()),
			tablePanel(fmt.Sprintf("Top %d Players", comparisonPlayers), scorers),
		},
	}
}

func (h *Handler) goalTrends(r *http.Request) Page {
	ctx := r.Context()
	selected := r.URL.Query().Get("team")
	team := h.views.BindTeam(ctx, selected)

	matches := h.views.Matches(ctx, team)
	points := derive.CumulativeGoals(matches.Rows)
	diag := matches.Diagnostic()

	trend := Panel{Title: "Goal Trend", Table: points, Diagnostic: diag}
	return Page{
		Filter: team.String(),
		Notice: unknownTeamNotice(selected, team),
		Panels: []Panel{
			chartPanel(chart.GoalTrend(points), diag),
			trend,
		},
	}
}
