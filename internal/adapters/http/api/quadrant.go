// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/greenwatch/internal/domain/model"
	"github.com/okian/greenwatch/internal/domain/types"
)

// QuadrantDependencies defines the interface for quadrant scatter operations.
type QuadrantDependencies interface {
	QuadrantView(ctx context.Context, yMetric model.Metric, year int) (types.QuadrantView, error)
}

// QuadrantHandler handles industry quadrant scatter requests.
type QuadrantHandler struct {
	deps QuadrantDependencies
}

// NewQuadrantHandler creates a new quadrant handler.
func NewQuadrantHandler(deps QuadrantDependencies) *QuadrantHandler {
	return &QuadrantHandler{deps: deps}
}

// HandleGetQuadrant handles GET /quadrant?y=gwe|gwghg[&year=YYYY] requests.
// The x axis is always CCII; y selects the greenwashing measure.
func (h *QuadrantHandler) HandleGetQuadrant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	yMetric, err := metricParam(r, "y")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if yMetric == model.MetricCCII {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	view, err := h.deps.QuadrantView(r.Context(), yMetric, year)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
