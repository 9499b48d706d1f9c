package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/greenwatch/internal/sampledata"
)

// Default configuration constants.
const (
	defaultCountries   = 30
	defaultIndustries  = 16
	defaultStartYear   = 2015
	defaultEndYear     = 2023
	defaultTimeout     = 30 * time.Second
	defaultToolTimeout = 10 * time.Minute
)

func main() {
	var (
		countryFile  = flag.String("country", "countrylevel.csv", "Output path for the country-level CSV")
		industryFile = flag.String("industry", "industrylevel.csv", "Output path for the industry-level CSV")
		countries    = flag.Int("countries", defaultCountries, "Number of countries to generate")
		industries   = flag.Int("industries", defaultIndustries, "Number of industries to generate")
		startYear    = flag.Int("start", defaultStartYear, "First year of the series")
		endYear      = flag.Int("end", defaultEndYear, "Last year of the series")
		verifyURL    = flag.String("verify", "", "Base URL of a running service to verify against")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout for verification")
		logFile      = flag.String("log", "", "Log file for tool output (default: gen_data_TIMESTAMP.log)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	// Setup logging
	if err := sampledata.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultToolTimeout)
	defer cancel()

	// Create generator configuration
	config := &sampledata.Config{
		CountryFile:  *countryFile,
		IndustryFile: *industryFile,
		Countries:    *countries,
		Industries:   *industries,
		StartYear:    *startYear,
		EndYear:      *endYear,
		BaseURL:      *verifyURL,
		Timeout:      *timeout,
		Verbose:      *verbose,
		LogFile:      *logFile,
	}

	// Run the generator
	if err := sampledata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		return
	}
}
