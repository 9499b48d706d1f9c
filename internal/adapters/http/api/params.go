// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/greenwatch/internal/domain/model"
)

// metricParam parses the named query parameter into a known metric.
func metricParam(r *http.Request, name string) (model.Metric, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return "", fmt.Errorf("%w: missing %s", ErrBadRequest, name)
	}
	m, err := model.ParseMetric(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return m, nil
}

// yearParam parses the optional year query parameter. Absence selects
// all years.
func yearParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return allYears, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year == allYears {
		return 0, fmt.Errorf("%w: invalid year %q", ErrBadRequest, raw)
	}
	return year, nil
}
