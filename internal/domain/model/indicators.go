package model

// IndicatorConfig describes how one metric column is titled and colored
// by the charts. The table is fixed; it does not depend on the data.
type IndicatorConfig struct {
	Key        Metric
	Title      string
	ColorScale []string
}

// Indicators returns the display configuration for all known metrics.
func Indicators() []IndicatorConfig {
	return []IndicatorConfig{
		{
			Key:        MetricCCII,
			Title:      "Climate Commitment Intensity Index (CCII)",
			ColorScale: []string{"#cce6ff", "#3399ff", "#003366"},
		},
		{
			Key:        MetricGWE,
			Title:      "Greenwashing based on Environmental Score (GWE)",
			ColorScale: []string{"#d9f2d9", "#4caf50", "#1b5e20"},
		},
		{
			Key:        MetricGWGHG,
			Title:      "Greenwashing based on Carbon Emissions (GWGHG)",
			ColorScale: []string{"#f5cccc", "#e53935", "#7f0000"},
		},
	}
}

// IndicatorFor returns the display configuration for a single metric.
func IndicatorFor(m Metric) IndicatorConfig {
	for _, ind := range Indicators() {
		if ind.Key == m {
			return ind
		}
	}
	// Unknown metrics fall back to a bare config rather than panicking;
	// ParseMetric is expected to have rejected them earlier.
	return IndicatorConfig{Key: m, Title: string(m)}
}
