// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/greenwatch/internal/domain/model"
	"github.com/okian/greenwatch/internal/domain/types"
)

// MapDependencies defines the interface for choropleth operations.
type MapDependencies interface {
	MapSeries(ctx context.Context, metric model.Metric, year int) (types.MapSeries, error)
}

// MapHandler handles choropleth series requests.
type MapHandler struct {
	deps MapDependencies
}

// NewMapHandler creates a new map handler.
func NewMapHandler(deps MapDependencies) *MapHandler {
	return &MapHandler{deps: deps}
}

// HandleGetMap handles GET /map?indicator=ccii|gwe|gwghg[&year=YYYY] requests.
// Without a year the full animation series is returned.
func (h *MapHandler) HandleGetMap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	metric, err := metricParam(r, "indicator")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	series, err := h.deps.MapSeries(r.Context(), metric, year)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}
