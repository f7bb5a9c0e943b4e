package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/fortuna/warroom/internal/league"
	"github.com/fortuna/warroom/internal/schedule"
	"github.com/fortuna/warroom/internal/service"
)

// Refresher produces a fresh dashboard on every call.
type Refresher interface {
	Refresh(ctx context.Context, opts service.RefreshOptions) (*service.Dashboard, error)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	dashboard Refresher
	teams     *league.Directory
	logger    *logrus.Entry
}

// NewHandler creates a new handler
func NewHandler(dashboard Refresher, teams *league.Directory, logger *logrus.Logger) *Handler {
	return &Handler{
		dashboard: dashboard,
		teams:     teams,
		logger:    logger.WithField("component", "rest"),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "warroom",
		"version": "1.0.0",
	})
}

// GetDashboard returns every view from one refresh
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, ok := h.refresh(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// GetRoster returns the roster performance view
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	d, ok := h.refresh(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team":     d.TeamName,
		"caption":  d.Caption,
		"warnings": d.Warnings,
		"players":  d.Roster,
	})
}

// GetSkaterTargets returns the ranked free-agent skaters
func (h *Handler) GetSkaterTargets(w http.ResponseWriter, r *http.Request) {
	d, ok := h.refresh(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sources": d.Sources,
		"targets": d.SkaterTargets,
	})
}

// GetGoalieTargets returns the ranked free-agent goalies or the roster-limit message
func (h *Handler) GetGoalieTargets(w http.ResponseWriter, r *http.Request) {
	d, ok := h.refresh(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, d.GoalieTargets)
}

// GetScheduleSummary returns games per day and each rostered player's week
func (h *Handler) GetScheduleSummary(w http.ResponseWriter, r *http.Request) {
	d, ok := h.refresh(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"week_start":      d.WeekStart,
		"sources":         d.Sources,
		"weekly_schedule": d.WeeklySchedule,
	})
}

// GetScheduleMatrix returns the player-by-weekday grid
func (h *Handler) GetScheduleMatrix(w http.ResponseWriter, r *http.Request) {
	d, ok := h.refresh(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"week_start": d.WeekStart,
		"days":       schedule.Weekdays,
		"rows":       d.ScheduleMatrix,
	})
}

// GetScheduleWeights returns the weekday weights in effect
func (h *Handler) GetScheduleWeights(w http.ResponseWriter, r *http.Request) {
	d, ok := h.refresh(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"source":      d.Sources.Weights,
		"mean_weight": d.MeanWeight,
		"weights":     d.Weights,
	})
}

// GetTeams returns the NHL team directory
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.teams.All())
}

// GetTeam looks a team up by abbreviation or full name
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["abbrev"]
	team, ok := h.teams.Lookup(key)
	if !ok {
		respondError(w, http.StatusNotFound, "Team not found", nil)
		return
	}
	respondJSON(w, http.StatusOK, team)
}

// refresh runs one dashboard refresh and writes the error response on failure.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) (*service.Dashboard, bool) {
	opts := service.RefreshOptions{GroupByPosition: r.URL.Query().Get("group") == "position"}

	d, err := h.dashboard.Refresh(r.Context(), opts)
	if err != nil {
		h.logger.WithError(err).WithField("request_id", RequestID(r.Context())).Error("Dashboard refresh failed")
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrLeagueUnavailable) {
			status = http.StatusBadGateway
		}
		respondError(w, status, service.Banner(err), nil)
		return nil, false
	}
	return d, true
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
