// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CountryCSV is the path to the country-level index dataset.
	CountryCSV string `koanf:"country_csv"`

	// IndustryCSV is the path to the industry-level index dataset.
	IndustryCSV string `koanf:"industry_csv"`

	// TopK is the default number of ranked entities per year.
	TopK int `koanf:"top_k"`

	// MaxTopK caps GET /rankings?k.
	MaxTopK int `koanf:"max_top_k"`

	// SessionCookie names the cookie carrying the like-counter session ID.
	SessionCookie string `koanf:"session_cookie"`
}

// New creates a Config using provided options. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use (e.g.,
// loading from env/files) and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:      "info",
		Addr:          ":9090",
		CountryCSV:    "countrylevel.csv",
		IndustryCSV:   "industrylevel.csv",
		TopK:          10,
		MaxTopK:       50,
		SessionCookie: "greenwatch_session",
	}
	return c
}
