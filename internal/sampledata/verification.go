package sampledata

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/okian/greenwatch/internal/domain/types"
)

// verifyService runs consistency checks against a running service.
func verifyService(ctx context.Context, config *Config, stats *Stats) error {
	log.Println("🔍 Verifying service responses...")
	client := &http.Client{Timeout: config.Timeout}

	checks := []struct {
		name string
		fn   func(context.Context, *http.Client, string) error
	}{
		{"ranking contiguity", checkRankingContiguity},
		{"quadrant reference stability", checkQuadrantReferences},
	}

	for _, check := range checks {
		stats.ChecksRun++
		if err := check.fn(ctx, client, config.BaseURL); err != nil {
			stats.ChecksFailed++
			log.Printf("⚠️  %s failed: %v", check.name, err)
			continue
		}
		log.Printf("✅ %s verified", check.name)
	}

	if stats.ChecksFailed > 0 {
		return fmt.Errorf("%d of %d checks failed", stats.ChecksFailed, stats.ChecksRun)
	}
	return nil
}

// getJSON fetches url and decodes the body into v.
func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkRankingContiguity verifies that within every year the ranks held
// by the returned trajectories are unique and start at 1.
func checkRankingContiguity(ctx context.Context, client *http.Client, baseURL string) error {
	var trajectories []types.Trajectory
	if err := getJSON(ctx, client, baseURL+"/rankings?indicator=ccii", &trajectories); err != nil {
		return err
	}
	if len(trajectories) == 0 {
		return fmt.Errorf("no trajectories returned")
	}

	ranksByYear := make(map[int]map[int]bool)
	for _, t := range trajectories {
		for _, p := range t.Points {
			if ranksByYear[p.Year] == nil {
				ranksByYear[p.Year] = make(map[int]bool)
			}
			if ranksByYear[p.Year][p.Rank] {
				return fmt.Errorf("year %d has duplicate rank %d", p.Year, p.Rank)
			}
			ranksByYear[p.Year][p.Rank] = true
		}
	}
	for year, ranks := range ranksByYear {
		for r := 1; r <= len(ranks); r++ {
			if !ranks[r] {
				return fmt.Errorf("year %d is missing rank %d", year, r)
			}
		}
	}
	return nil
}

// checkQuadrantReferences verifies that reference lines and axis ranges
// are identical on repeated requests, single-year or not.
func checkQuadrantReferences(ctx context.Context, client *http.Client, baseURL string) error {
	var full types.QuadrantView
	if err := getJSON(ctx, client, baseURL+"/quadrant?y=gwe", &full); err != nil {
		return err
	}
	if len(full.Years) == 0 {
		return fmt.Errorf("quadrant view has no years")
	}

	for _, year := range full.Years {
		var single types.QuadrantView
		url := fmt.Sprintf("%s/quadrant?y=gwe&year=%d", baseURL, year)
		if err := getJSON(ctx, client, url, &single); err != nil {
			return err
		}
		if single.XRef != full.XRef || single.YRef != full.YRef {
			return fmt.Errorf("year %d has shifted reference lines", year)
		}
		if single.XMin != full.XMin || single.XMax != full.XMax ||
			single.YMin != full.YMin || single.YMax != full.YMax {
			return fmt.Errorf("year %d has shifted axis ranges", year)
		}
	}
	return nil
}
