// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// Metric identifies one of the precomputed index columns.
type Metric string

// Known metric columns. The values match the CSV header names.
const (
	MetricCCII  Metric = "ccii"
	MetricGWE   Metric = "gwe"
	MetricGWGHG Metric = "gwghg"
)

// Metrics lists the known metric columns in display order.
func Metrics() []Metric {
	return []Metric{MetricCCII, MetricGWE, MetricGWGHG}
}

// ParseMetric maps a user-supplied name to a known Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(s))) {
	case MetricCCII:
		return MetricCCII, nil
	case MetricGWE:
		return MetricGWE, nil
	case MetricGWGHG:
		return MetricGWGHG, nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// Record is one (entity, year) observation of the precomputed indices.
// Entity is a country or an industry depending on the dataset.
type Record struct {
	Entity string
	Year   int
	CCII   float64
	GWE    float64
	GWGHG  float64
}

// Value returns the metric column of the record.
func (r Record) Value(m Metric) float64 {
	switch m {
	case MetricGWE:
		return r.GWE
	case MetricGWGHG:
		return r.GWGHG
	default:
		return r.CCII
	}
}

// Dataset is an immutable in-memory table loaded from one CSV file.
// At most one record exists per (entity, year) pair; the loader enforces
// this at parse time. Callers must treat Records as read-only.
type Dataset struct {
	// EntityColumn is the header name of the entity column, e.g.
	// "country" or "industry".
	EntityColumn string

	// Records preserve the original file row order. Ranking relies on
	// this order for deterministic tie-breaking.
	Records []Record
}

// Years returns the sorted distinct years present in the dataset.
func (d *Dataset) Years() []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, r := range d.Records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	sort.Ints(years)
	return years
}

// ByYear returns the records for one year in original row order.
func (d *Dataset) ByYear(year int) []Record {
	var out []Record
	for _, r := range d.Records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	return len(d.Records)
}
