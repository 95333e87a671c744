package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fortuna/janus/internal/stats"
	"github.com/fortuna/janus/internal/trade"
	"github.com/go-playground/validator/v10"
)

const (
	viewAll     = "all"
	viewFantasy = "fantasy"
)

// TradeAnalyzer runs trade evaluations and single-player lookups
type TradeAnalyzer interface {
	Run(ctx context.Context, myPlayers, awayPlayers []string) (*trade.Report, error)
	Profile(ctx context.Context, fullName string) (stats.RateProfile, error)
}

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	analyzer TradeAnalyzer
	checks   map[string]HealthChecker
	validate *validator.Validate
}

// NewHandler creates a new handler. checks maps a dependency name to its
// health checker; nil entries are skipped.
func NewHandler(analyzer TradeAnalyzer, checks map[string]HealthChecker) *Handler {
	return &Handler{
		analyzer: analyzer,
		checks:   checks,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check.HealthCheck(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "degraded"
	}

	respondJSON(w, status, map[string]interface{}{
		"status":       overall,
		"service":      "janus",
		"version":      "1.0.0",
		"dependencies": deps,
	})
}

// evaluateRequest is the body of POST /api/v1/trades/evaluate
type evaluateRequest struct {
	MyPlayers   []string `json:"my_players" validate:"required,min=1,dive,required"`
	AwayPlayers []string `json:"away_players" validate:"required,min=1,dive,required"`
	View        string   `json:"view" validate:"omitempty,oneof=all fantasy"`
}

type sideResponse struct {
	Players  int                 `json:"players"`
	Profiles []stats.RateProfile `json:"profiles"`
	PerGame  stats.Profile       `json:"per_game"`
}

type categoryRow struct {
	Category    string  `json:"category"`
	Mine        float64 `json:"mine"`
	Away        float64 `json:"away"`
	Diff        float64 `json:"diff"`
	PercentDiff float64 `json:"percent_diff"`
}

type evaluateResponse struct {
	View       string        `json:"view"`
	Mine       sideResponse  `json:"mine"`
	Away       sideResponse  `json:"away"`
	Categories []categoryRow `json:"categories"`
}

// EvaluateTrade compares the per-game production of two groups of players
func (h *Handler) EvaluateTrade(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid trade request", err)
		return
	}
	if req.View == "" {
		req.View = viewAll
	}

	report, err := h.analyzer.Run(r.Context(), req.MyPlayers, req.AwayPlayers)
	if err != nil {
		respondError(w, statusFor(err), "Failed to evaluate trade", err)
		return
	}

	if req.View == viewFantasy {
		report = report.Fantasy()
	}

	respondJSON(w, http.StatusOK, newEvaluateResponse(req.View, report))
}

// GetPlayerSeason returns the per-game profile of a single player
func (h *Handler) GetPlayerSeason(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		respondError(w, http.StatusBadRequest, "Missing player name", nil)
		return
	}

	profile, err := h.analyzer.Profile(r.Context(), name)
	if err != nil {
		respondError(w, statusFor(err), "Failed to load player season", err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func newEvaluateResponse(view string, report *trade.Report) evaluateResponse {
	categories := report.Diff.Categories()
	rows := make([]categoryRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, categoryRow{
			Category:    c.String(),
			Mine:        report.Mine.Value(c),
			Away:        report.Away.Value(c),
			Diff:        report.Diff.Diff(c),
			PercentDiff: report.Diff.PercentDiff(c),
		})
	}

	return evaluateResponse{
		View: view,
		Mine: sideResponse{
			Players:  report.Mine.Players,
			Profiles: report.MinePlayers,
			PerGame:  report.Mine.Stats,
		},
		Away: sideResponse{
			Players:  report.Away.Players,
			Profiles: report.AwayPlayers,
			PerGame:  report.Away.Stats,
		},
		Categories: rows,
	}
}

// statusFor maps analysis errors to HTTP status codes
func statusFor(err error) int {
	var (
		notFound *stats.PlayerNotFoundError
		state    *stats.InvalidPlayerStateError
		empty    *trade.EmptyRosterError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &state):
		return http.StatusUnprocessableEntity
	case errors.As(err, &empty):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
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
