package handler

import (
	"fmt"
	"net/http"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/api/respond"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/chart"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/derive"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/filter"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/query"
)

const (
	dashboardScorers = 10
	playersPageLimit = 20
	recentMatches    = 10
)

// TeamsResponse lists the valid team filter values.
type TeamsResponse struct {
	Teams      []string `json:"teams"`
	AllTeams   string   `json:"all_teams"`
	Diagnostic string   `json:"diagnostic,omitempty"`
}

// Teams lists the filter choices.
// @Summary List teams
// @Description Returns every team name, ordered, for the team filter.
// @Tags pages
// @Produce json
// @Success 200 {object} TeamsResponse
// @Router /api/v1/teams [get]
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	res := h.views.TeamNames(r.Context())
	teams := res.Rows
	if teams == nil {
		teams = []string{}
	}
	respond.WriteJSONObject(w, http.StatusOK, TeamsResponse{
		Teams:      teams,
		AllTeams:   filter.AllTeams,
		Diagnostic: res.Diagnostic(),
	})
}

// Dashboard serves the league headline, team goals and scoring leaders.
// @Summary Dashboard page
// @Description League totals, goals for vs against of the top teams, and the top 10 scorers.
// @Tags pages
// @Produce json
// @Success 200 {object} Page
// @Router /api/v1/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summary := h.views.TeamSummary(ctx)
	scorers := h.views.TopScorers(ctx, dashboardScorers)

	page := Page{
		Page:   "dashboard",
		Filter: filter.AllTeams,
		Panels: []Panel{
			metricsPanel("League Statistics", derive.LeagueTotals(summary.Rows), summary.Diagnostic()),
			chartPanel(chart.TeamGoals(summary.Rows), summary.Diagnostic()),
			chartPanel(chart.TopScorers(scorers.Rows), scorers.Diagnostic()),
			tablePanel("Top Scorers", scorers),
		},
	}
	respond.WriteJSONObject(w, http.StatusOK, page)
}

// Team serves the page of one team. A missing or unknown name shows the
// first team.
// @Summary Team page
// @Description Performance metrics, win-rate gauge, result distribution, recent matches and squad of one team.
// @Tags pages
// @Produce json
// @Param name query string false "Team name; defaults to the first team"
// @Success 200 {object} Page
// @Router /api/v1/team [get]
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := Page{Page: "team"}

	names := h.views.TeamNames(ctx)
	if !names.OK() {
		page.Filter = filter.AllTeams
		page.Panels = []Panel{tablePanel("Teams", names)}
		respond.WriteJSONObject(w, http.StatusOK, page)
		return
	}
	if len(names.Rows) == 0 {
		page.Filter = filter.AllTeams
		page.Notice = "No teams available"
		page.Panels = []Panel{}
		respond.WriteJSONObject(w, http.StatusOK, page)
		return
	}

	selected := r.URL.Query().Get("name")
	name := names.Rows[0]
	team, err := filter.Bind(selected, names.Rows)
	if bound, ok := team.Name(); ok {
		name = bound
	} else if err != nil {
		page.Notice = fmt.Sprintf("Unknown team %q, showing %s", selected, name)
	}
	page.Filter = name

	perf := h.views.TeamPerformance(ctx, name)
	row, ok := perf.First()
	if !ok {
		row = query.TeamPerformanceRow{TeamName: name}
	}
	summary := derive.Performance(row)

	matches := h.views.Matches(ctx, filter.ByTeam(name))
	outcomes := derive.ResultDistribution(derive.MatchOutcomes(matches.Rows, name))

	recent := matches
	recent.Rows = matches.Rows[:min(len(matches.Rows), recentMatches)]

	squad := h.views.PlayerStats(ctx, filter.ByTeam(name))

	page.Panels = []Panel{
		metricsPanel("Performance", summary, perf.Diagnostic()),
		chartPanel(chart.WinRateGauge(summary), perf.Diagnostic()),
		chartPanel(chart.ResultDistribution(outcomes), matches.Diagnostic()),
		tablePanel("Recent Matches", recent),
		tablePanel("Squad", squad),
	}
	respond.WriteJSONObject(w, http.StatusOK, page)
}

// Players serves the player table: the top scorers across the league, or
// every player of the selected team.
// @Summary Players page
// @Description Without a team the top 20 scorers across all teams, with a team every player of that team.
// @Tags pages
// @Produce json
// @Param team query string false "Team name or All Teams"
// @Success 200 {object} Page
// @Router /api/v1/players [get]
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	selected := r.URL.Query().Get("team")
	team := h.views.BindTeam(ctx, selected)

	page := Page{Page: "players", Filter: team.String(), Notice: unknownTeamNotice(selected, team)}
	if name, ok := team.Name(); ok {
		page.Panels = []Panel{tablePanel("All Players - "+name, h.views.PlayerStats(ctx, team))}
	} else {
		page.Panels = []Panel{tablePanel(fmt.Sprintf("Top %d Scorers Across All Teams", playersPageLimit), h.views.TopScorers(ctx, playersPageLimit))}
	}
	respond.WriteJSONObject(w, http.StatusOK, page)
}

// Matches serves the match list with its totals and charts.
// @Summary Matches page
// @Description Match totals, home goals chart, result distribution and the match list, optionally for one team.
// @Tags pages
// @Produce json
// @Param team query string false "Team name or All Teams"
// @Success 200 {object} Page
// @Router /api/v1/matches [get]
func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	selected := r.URL.Query().Get("team")
	team := h.views.BindTeam(ctx, selected)
	name, _ := team.Name()

	matches := h.views.Matches(ctx, team)
	diag := matches.Diagnostic()
	outcomes := derive.ResultDistribution(derive.MatchOutcomes(matches.Rows, name))

	page := Page{
		Page:   "matches",
		Filter: team.String(),
		Notice: unknownTeamNotice(selected, team),
		Panels: []Panel{
			metricsPanel("Match Statistics", derive.MatchTotals(matches.Rows), diag),
			chartPanel(chart.HomeGoals(matches.Rows), diag),
			chartPanel(chart.ResultDistribution(outcomes), diag),
			tablePanel("Matches", matches),
		},
	}
	respond.WriteJSONObject(w, http.StatusOK, page)
}

// unknownTeamNotice explains a selection that was dropped in favor of all
// teams.
func unknownTeamNotice(selected string, team filter.Team) string {
	if team.IsSet() {
		return ""
	}
	if _, err := filter.Bind(selected, nil); err == nil {
		return ""
	}
	return fmt.Sprintf("Unknown team %q, showing %s", selected, filter.AllTeams)
}
