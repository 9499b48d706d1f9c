package sampledata

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Run generates the datasets and optionally verifies a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	if err := validate(config); err != nil {
		return err
	}

	countries := pickEntities(countryNames, config.Countries)
	industries := pickEntities(industryNames, config.Industries)

	countryRows := generateRows(countries, config.StartYear, config.EndYear)
	industryRows := generateRows(industries, config.StartYear, config.EndYear)
	stats.CountryRows = len(countryRows)
	stats.IndustryRows = len(industryRows)

	if err := writeCSV(ctx, config.CountryFile, "country", countryRows); err != nil {
		return err
	}
	if err := writeCSV(ctx, config.IndustryFile, "industry", industryRows); err != nil {
		return err
	}

	// Verification is opt-in: it needs a service already running with
	// the files written above.
	if config.BaseURL != "" {
		if err := verifyService(ctx, config, stats); err != nil {
			return err
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	printSummary(config, stats)
	return nil
}

// validate checks the generator configuration.
func validate(config *Config) error {
	if config.CountryFile == "" || config.IndustryFile == "" {
		return fmt.Errorf("output paths must not be empty")
	}
	if config.Countries < 1 || config.Industries < 1 {
		return fmt.Errorf("entity counts must be >= 1")
	}
	if config.EndYear < config.StartYear {
		return fmt.Errorf("end year %d precedes start year %d", config.EndYear, config.StartYear)
	}
	return nil
}

// printSummary logs the final statistics.
func printSummary(config *Config, stats *Stats) {
	log.Printf(`📊 Generation summary:
   Country rows:  %d -> %s
   Industry rows: %d -> %s
   Checks run:    %d (%d failed)
   Duration:      %s
`, stats.CountryRows, config.CountryFile,
		stats.IndustryRows, config.IndustryFile,
		stats.ChecksRun, stats.ChecksFailed,
		stats.Duration)
}
