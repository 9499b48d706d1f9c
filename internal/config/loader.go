package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if GREENWATCH_CONFIG is set
//  3. env (prefix GREENWATCH_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("GREENWATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: GREENWATCH_ADDR, GREENWATCH_TOP_K, ...
	// Map env keys like GREENWATCH_TOP_K -> top_k (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("GREENWATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "greenwatch_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.CountryCSV == "" || cfg.IndustryCSV == "" {
		return nil, fmt.Errorf("%w: dataset paths must not be empty", ErrInvalidConfig)
	}
	if cfg.TopK < 1 || cfg.MaxTopK < cfg.TopK {
		return nil, fmt.Errorf("%w: top_k must be >= 1 and <= max_top_k", ErrInvalidConfig)
	}
	return &cfg, nil
}
