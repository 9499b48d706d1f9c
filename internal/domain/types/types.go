// Package types contains common types used across the application
package types

// RankedEntry represents one entity ranked within a single year.
type RankedEntry struct {
	Entity string  `json:"entity"`
	Year   int     `json:"year"`
	Value  float64 `json:"value"`
	Rank   int     `json:"rank"`
}

// TrajectoryPoint is one year of an entity's rank trajectory.
type TrajectoryPoint struct {
	Year  int     `json:"year"`
	Rank  int     `json:"rank"`
	Value float64 `json:"value"`
}

// Trajectory is the per-entity series consumed by the rank bump chart.
// Years an entity never ranked in are simply absent from Points; the
// renderer must break the line on gaps, never interpolate across them.
type Trajectory struct {
	Entity string            `json:"entity"`
	Points []TrajectoryPoint `json:"points"`
}

// MapPoint is one (country, year, value) sample of a choropleth series.
type MapPoint struct {
	Country string  `json:"country"`
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
}

// Indicator describes how a metric column is displayed.
type Indicator struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	ColorScale []string `json:"color_scale"`
}

// MapSeries bundles everything the choropleth needs for one indicator.
type MapSeries struct {
	Indicator Indicator  `json:"indicator"`
	Years     []int      `json:"years"`
	Points    []MapPoint `json:"points"`
}

// Point is an (entity, x, y) sample of a quadrant scatter frame.
type Point struct {
	Entity string  `json:"entity"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Annotation is a fixed quadrant label anchor. Anchors are computed once
// from global extrema, never per frame.
type Annotation struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Frame is the per-year point set of the animated quadrant scatter.
type Frame struct {
	Year   int     `json:"year"`
	Points []Point `json:"points"`
}

// QuadrantView is the full payload for the industry quadrant chart.
// XRef, YRef, axis ranges and Annotations are shared across all frames
// so quadrant boundaries do not jump during the animation.
type QuadrantView struct {
	XMetric     string       `json:"x_metric"`
	YMetric     string       `json:"y_metric"`
	XRef        float64      `json:"x_ref"`
	YRef        float64      `json:"y_ref"`
	XMin        float64      `json:"x_min"`
	XMax        float64      `json:"x_max"`
	YMin        float64      `json:"y_min"`
	YMax        float64      `json:"y_max"`
	Annotations []Annotation `json:"annotations"`
	Years       []int        `json:"years"`
	Frames      []Frame      `json:"frames"`
}

// LikeCounts holds the ephemeral per-session reaction counters.
type LikeCounts struct {
	Likes int `json:"likes"`
	Stars int `json:"stars"`
}
