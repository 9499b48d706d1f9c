// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/okian/greenwatch/internal/adapters/repository"
	"github.com/okian/greenwatch/internal/domain/model"
	"github.com/okian/greenwatch/internal/domain/quadrant"
	"github.com/okian/greenwatch/internal/domain/ranking"
	"github.com/okian/greenwatch/internal/domain/types"
)

// allYears selects every year of a dataset when no year param is given.
const allYears = 0

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// MapSeries returns the choropleth series for one indicator.
	MapSeries(ctx context.Context, metric model.Metric, year int) (types.MapSeries, error)

	// TopTrajectories returns top-k rank trajectories for one indicator.
	TopTrajectories(ctx context.Context, metric model.Metric, k int) ([]types.Trajectory, error)

	// QuadrantView returns the industry scatter layout and frames.
	QuadrantView(ctx context.Context, yMetric model.Metric, year int) (types.QuadrantView, error)

	// Indicators returns the fixed display configuration table.
	Indicators(ctx context.Context) []types.Indicator
}

// SessionProvider exposes the ephemeral like counters.
type SessionProvider interface {
	NewSession(ctx context.Context) string
	Like(ctx context.Context, sessionID, kind string) (types.LikeCounts, error)
	LikeCounts(ctx context.Context, sessionID string) types.LikeCounts
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	mapHandler        *MapHandler
	rankingsHandler   *RankingsHandler
	quadrantHandler   *QuadrantHandler
	indicatorsHandler *IndicatorsHandler
	likesHandler      *LikesHandler
	dashboardHandler  *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, sessions SessionProvider, statsProvider StatsProvider, maxTopK int, sessionCookie string) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		mapHandler:        NewMapHandler(deps),
		rankingsHandler:   NewRankingsHandler(deps, maxTopK),
		quadrantHandler:   NewQuadrantHandler(deps),
		indicatorsHandler: NewIndicatorsHandler(deps),
		likesHandler:      NewLikesHandler(sessions, sessionCookie),
		dashboardHandler:  newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/map", MetricsMiddleware(s.mapHandler.HandleGetMap, "map"))
	mux.HandleFunc("/rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("/quadrant", MetricsMiddleware(s.quadrantHandler.HandleGetQuadrant, "quadrant"))
	mux.HandleFunc("/indicators", MetricsMiddleware(s.indicatorsHandler.HandleGetIndicators, "indicators"))
	mux.HandleFunc("/likes", MetricsMiddleware(s.likesHandler.HandleLikes, "likes"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps upstream errors onto the API taxonomy. A failed
// dataset load surfaces as 503 for that section only; layout math over
// an empty table is a 422; anything unrecognized is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrDataLoad):
		writeError(w, http.StatusServiceUnavailable, "data_unavailable", err)
	case errors.Is(err, quadrant.ErrInsufficientData):
		writeError(w, http.StatusUnprocessableEntity, "insufficient_data", err)
	case errors.Is(err, ranking.ErrInvalidK):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
