// Package ranking computes within-year descending ranks over a dataset
// and reshapes them into per-entity trajectories for the bump chart.
package ranking

import (
	"sort"

	"github.com/okian/greenwatch/internal/domain/model"
	"github.com/okian/greenwatch/internal/domain/types"
)

// DefaultK is the number of ranked entries retained per year.
const DefaultK = 10

// TopK partitions the dataset by year, sorts each partition by the metric
// in descending order, assigns 1-based ranks and keeps entries with
// rank <= k. Ties are broken by original row order: the row appearing
// first in the input wins the lower rank. The result is sorted by
// (entity, year) for trajectory rendering.
func TopK(ds *model.Dataset, metric model.Metric, k int) ([]types.RankedEntry, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyGroup
	}

	var out []types.RankedEntry
	for _, year := range ds.Years() {
		rows := ds.ByYear(year)

		// Stable sort over the original row order reproduces the
		// first-occurrence-wins tie-break.
		idx := make([]int, len(rows))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return rows[idx[a]].Value(metric) > rows[idx[b]].Value(metric)
		})

		limit := k
		if len(idx) < limit {
			limit = len(idx)
		}
		for pos := 0; pos < limit; pos++ {
			r := rows[idx[pos]]
			out = append(out, types.RankedEntry{
				Entity: r.Entity,
				Year:   year,
				Value:  r.Value(metric),
				Rank:   pos + 1,
			})
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Entity != out[b].Entity {
			return out[a].Entity < out[b].Entity
		}
		return out[a].Year < out[b].Year
	})
	return out, nil
}

// Trajectories groups ranked entries into one series per entity. Input
// is expected sorted by (entity, year) as produced by TopK. Years an
// entity never ranked in are absent from its points; no values are
// fabricated for gaps.
func Trajectories(entries []types.RankedEntry) []types.Trajectory {
	var out []types.Trajectory
	for _, e := range entries {
		if n := len(out); n == 0 || out[n-1].Entity != e.Entity {
			out = append(out, types.Trajectory{Entity: e.Entity})
		}
		last := &out[len(out)-1]
		last.Points = append(last.Points, types.TrajectoryPoint{
			Year:  e.Year,
			Rank:  e.Rank,
			Value: e.Value,
		})
	}
	return out
}
