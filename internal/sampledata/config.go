package sampledata

import "time"

// Config holds configuration for the dataset generator.
type Config struct {
	CountryFile  string        // Output path for the country-level CSV
	IndustryFile string        // Output path for the industry-level CSV
	Countries    int           // Number of countries to generate
	Industries   int           // Number of industries to generate
	StartYear    int           // First year of the series
	EndYear      int           // Last year of the series (inclusive)
	BaseURL      string        // Base URL of a running service to verify against
	Timeout      time.Duration // HTTP request timeout for verification
	Verbose      bool          // Enable verbose logging
	LogFile      string        // Log file for tool output
}

// Stats holds generation and verification statistics.
type Stats struct {
	CountryRows   int
	IndustryRows  int
	ChecksRun     int
	ChecksFailed  int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}
