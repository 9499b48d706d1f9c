package sampledata

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/greenwatch/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "gen_data_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the dataset generator.
func ShowHelp() {
	os.Stdout.WriteString(`Greenwatch Dataset Generator
============================

Generates plausible country-level and industry-level index datasets in
the CSV layout the service loads, and can verify chart invariants
against a running instance.

Usage:
  go run cmd/gen-data/main.go [options]

Options:
  -country string
        Output path for the country-level CSV (default "countrylevel.csv")
  -industry string
        Output path for the industry-level CSV (default "industrylevel.csv")
  -countries int
        Number of countries to generate (default 30)
  -industries int
        Number of industries to generate (default 16)
  -start int
        First year of the series (default 2015)
  -end int
        Last year of the series (default 2023)
  -verify string
        Base URL of a running service to verify against (default: skip)
  -timeout duration
        HTTP request timeout for verification (default 30s)
  -log string
        Log file for tool output (default: gen_data_TIMESTAMP.log)
  -verbose
        Enable verbose logging

Examples:
  # Generate datasets with default settings
  go run cmd/gen-data/main.go

  # Generate a small fixture
  go run cmd/gen-data/main.go -countries 5 -industries 3 -start 2019 -end 2021

  # Generate and verify a running service
  go run cmd/gen-data/main.go -verify http://localhost:9090
`)
}
