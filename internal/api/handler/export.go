package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/analytics"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/api/respond"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/export"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/filter"
)

// PlayersExport downloads the table shown on the players page.
// @Summary Export players
// @Description CSV of the top 20 scorers, or of every player of the selected team.
// @Tags exports
// @Produce text/csv
// @Param team query string false "Team name or All Teams"
// @Success 200 {string} string "CSV file"
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/players/export.csv [get]
func (h *Handler) PlayersExport(w http.ResponseWriter, r *http.Request) {
	selected := r.URL.Query().Get("team")
	req := analytics.ExportRequest{View: analytics.ViewTopScorers, Limit: playersPageLimit}
	if h.views.BindTeam(r.Context(), selected).IsSet() {
		req = analytics.ExportRequest{View: analytics.ViewPlayers, Team: selected}
	}
	h.writeExport(w, r, "players", req)
}

// MatchesExport downloads the match list.
// @Summary Export matches
// @Description CSV of the match list, optionally for one team.
// @Tags exports
// @Produce text/csv
// @Param team query string false "Team name or All Teams"
// @Success 200 {string} string "CSV file"
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/matches/export.csv [get]
func (h *Handler) MatchesExport(w http.ResponseWriter, r *http.Request) {
	req := analytics.ExportRequest{View: analytics.ViewMatches, Team: r.URL.Query().Get("team")}
	h.writeExport(w, r, "matches", req)
}

// Export downloads any query view.
// @Summary Export a view
// @Description CSV of teams, team-summary, top-scorers, matches, players or team-performance.
// @Tags exports
// @Produce text/csv
// @Param view path string true "View name"
// @Param team query string false "Team filter"
// @Param limit query int false "Row limit for top-scorers"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/export/{view} [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")
	req := analytics.ExportRequest{View: view, Team: r.URL.Query().Get("team")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be an integer", err.Error())
			return
		}
		req.Limit = n
	}
	h.writeExport(w, r, view, req)
}

func (h *Handler) writeExport(w http.ResponseWriter, r *http.Request, name string, req analytics.ExportRequest) {
	table, err := analytics.ExportTable(r.Context(), h.views, req)
	if err != nil {
		var qerr *analytics.QueryError
		switch {
		case errors.As(err, &qerr):
			respond.WriteErrorDetail(w, http.StatusServiceUnavailable, "QUERY_FAILED", qerr.Diagnostic(), qerr.Kind)
		case errors.Is(err, analytics.ErrUnknownView):
			respond.WriteErrorDetail(w, http.StatusNotFound, "UNKNOWN_VIEW", "Unknown view", err.Error())
		case errors.Is(err, filter.ErrUnknownTeam):
			respond.WriteErrorDetail(w, http.StatusBadRequest, "UNKNOWN_TEAM", "A known team is required", err.Error())
		default:
			h.logger.Error("Export failed", "view", req.View, "error", err)
			respond.WriteError(w, http.StatusInternalServerError, "EXPORT_FAILED", "Export failed")
		}
		return
	}
	h.logger.Debug("Export", "view", req.View, "rows", table.Len())
	respond.WriteCSV(w, export.FileName(name, h.now()), table)
}
