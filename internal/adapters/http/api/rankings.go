// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/greenwatch/internal/domain/model"
	"github.com/okian/greenwatch/internal/domain/types"
)

// RankingsDependencies defines the interface for ranking operations.
type RankingsDependencies interface {
	TopTrajectories(ctx context.Context, metric model.Metric, k int) ([]types.Trajectory, error)
}

// RankingsHandler handles rank trajectory requests.
type RankingsHandler struct {
	deps RankingsDependencies
	maxK int
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps RankingsDependencies, maxK int) *RankingsHandler {
	return &RankingsHandler{
		deps: deps,
		maxK: maxK,
	}
}

// HandleGetRankings handles GET /rankings?indicator=...[&k=N] requests.
// Omitting k selects the configured default.
func (h *RankingsHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	metric, err := metricParam(r, "indicator")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	k := 0
	if raw := r.URL.Query().Get("k"); raw != "" {
		k, err = strconv.Atoi(raw)
		if err != nil || k < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if k > h.maxK {
			writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
			return
		}
	}

	trajectories, err := h.deps.TopTrajectories(r.Context(), metric, k)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trajectories)
}
