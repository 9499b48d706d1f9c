// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/greenwatch/internal/domain/types"
)

// IndicatorsDependencies defines the interface for indicator configuration.
type IndicatorsDependencies interface {
	Indicators(ctx context.Context) []types.Indicator
}

// IndicatorsHandler handles indicator configuration requests.
type IndicatorsHandler struct {
	deps IndicatorsDependencies
}

// NewIndicatorsHandler creates a new indicators handler.
func NewIndicatorsHandler(deps IndicatorsDependencies) *IndicatorsHandler {
	return &IndicatorsHandler{deps: deps}
}

// HandleGetIndicators handles GET /indicators requests.
func (h *IndicatorsHandler) HandleGetIndicators(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Indicators(r.Context()))
}
