// Package quadrant computes the fixed reference lines, annotation
// anchors and per-year frames of the commitment-vs-greenwashing scatter.
package quadrant

import (
	"github.com/okian/greenwatch/internal/domain/model"
	"github.com/okian/greenwatch/internal/domain/types"
)

// Annotation anchor offsets relative to the global axis extrema.
const (
	anchorXFactor = 0.6
	anchorYFactor = 0.9
)

// Fixed quadrant label texts. They mirror the dashboard's reading of the
// four regions and do not depend on the data beyond positioning.
const (
	LabelHighXHighY = "High CCII / High Greenwashing (Symbolic Commitment)"
	LabelLowXHighY  = "Low CCII / High Greenwashing (Formalist / Passive)"
	LabelLowXLowY   = "Low CCII / Low Greenwashing (Low-risk Industry)"
	LabelHighXLowY  = "High CCII / Low Greenwashing (Substantive Commitment)"
)

// Layout holds everything shared across animation frames: global axis
// extrema, reference lines and annotation anchors. Build it once per
// (dataset, axis) selection and derive frames from it.
type Layout struct {
	xMetric model.Metric
	yMetric model.Metric

	xMin, xMax float64
	yMin, yMax float64

	// xRef is fixed at zero: the commitment axis is centered at its
	// natural zero, not at a data-derived midpoint. yRef is the global
	// mean of the y column over all rows and years.
	xRef, yRef float64

	annotations []types.Annotation
	byYear      map[int][]types.Point
	years       []int
}

// NewLayout computes global extrema, reference lines and annotation
// anchors over all rows of the dataset. It fails with
// ErrInsufficientData on an empty dataset rather than letting NaN from
// an empty mean propagate into the layout math.
func NewLayout(ds *model.Dataset, xMetric, yMetric model.Metric) (*Layout, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrInsufficientData
	}

	l := &Layout{
		xMetric: xMetric,
		yMetric: yMetric,
		xRef:    0,
		byYear:  make(map[int][]types.Point),
	}

	var ySum float64
	for i, r := range ds.Records {
		x, y := r.Value(xMetric), r.Value(yMetric)
		if i == 0 {
			l.xMin, l.xMax = x, x
			l.yMin, l.yMax = y, y
		}
		if x < l.xMin {
			l.xMin = x
		}
		if x > l.xMax {
			l.xMax = x
		}
		if y < l.yMin {
			l.yMin = y
		}
		if y > l.yMax {
			l.yMax = y
		}
		ySum += y

		l.byYear[r.Year] = append(l.byYear[r.Year], types.Point{Entity: r.Entity, X: x, Y: y})
	}
	l.yRef = ySum / float64(ds.Len())
	l.years = ds.Years()

	// Anchors are computed by formula even when an extreme is
	// non-negative and a "low" quadrant is visually degenerate.
	l.annotations = []types.Annotation{
		{X: l.xMax * anchorXFactor, Y: l.yMax * anchorYFactor, Text: LabelHighXHighY},
		{X: l.xMin * anchorXFactor, Y: l.yMax * anchorYFactor, Text: LabelLowXHighY},
		{X: l.xMin * anchorXFactor, Y: l.yMin * anchorYFactor, Text: LabelLowXLowY},
		{X: l.xMax * anchorXFactor, Y: l.yMin * anchorYFactor, Text: LabelHighXLowY},
	}
	return l, nil
}

// XRef returns the fixed vertical reference line position.
func (l *Layout) XRef() float64 { return l.xRef }

// YRef returns the horizontal reference line position (global y mean).
func (l *Layout) YRef() float64 { return l.yRef }

// Extrema returns the global axis extrema (xMin, xMax, yMin, yMax).
func (l *Layout) Extrema() (xMin, xMax, yMin, yMax float64) {
	return l.xMin, l.xMax, l.yMin, l.yMax
}

// Annotations returns the four fixed quadrant label anchors.
func (l *Layout) Annotations() []types.Annotation {
	out := make([]types.Annotation, len(l.annotations))
	copy(out, l.annotations)
	return out
}

// Years returns the sorted distinct years available for animation.
func (l *Layout) Years() []int {
	out := make([]int, len(l.years))
	copy(out, l.years)
	return out
}

// Frame returns the point set for one year. Reference lines and
// annotations are not part of the frame; they are shared across frames.
// Returns ErrEmptyGroup when the year has no rows.
func (l *Layout) Frame(year int) (types.Frame, error) {
	points, ok := l.byYear[year]
	if !ok || len(points) == 0 {
		return types.Frame{}, ErrEmptyGroup
	}
	out := make([]types.Point, len(points))
	copy(out, points)
	return types.Frame{Year: year, Points: out}, nil
}

// Frames returns one frame per year in ascending year order.
func (l *Layout) Frames() []types.Frame {
	out := make([]types.Frame, 0, len(l.years))
	for _, year := range l.years {
		if f, err := l.Frame(year); err == nil {
			out = append(out, f)
		}
	}
	return out
}
