package sampledata

import (
	"context"
	"crypto/rand"
	"encoding/csv"
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/okian/greenwatch/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	profileDivisor     = 4
)

// Constants for index generation ranges. CCII can go negative for
// entities that walked commitments back; the greenwashing indices are
// non-negative.
const (
	cciiMin   = -2.0
	cciiRange = 7.0
	gwMin     = 0.0
	gwRange   = 10.0

	leaderCCIIMin   = 2.5
	leaderCCIIRange = 2.5
	leaderGWRange   = 3.0

	symbolicCCIIMin   = 1.5
	symbolicCCIIRange = 3.0
	symbolicGWMin     = 6.0
	symbolicGWRange   = 4.0

	laggardCCIIMin   = -2.0
	laggardCCIIRange = 2.0
)

// Generation profile cases.
const (
	caseLeader   = 0 // high commitment, low greenwashing
	caseSymbolic = 1 // high commitment, high greenwashing
	caseLaggard  = 2 // low commitment
	caseMixed    = 3 // anywhere in range
)

var countryNames = []string{
	"Norway", "Sweden", "Denmark", "Finland", "Germany", "France",
	"United Kingdom", "Netherlands", "Spain", "Portugal", "Italy",
	"Chile", "Brazil", "Argentina", "Mexico", "Canada", "United States",
	"Japan", "South Korea", "Australia", "New Zealand", "India",
	"Kenya", "South Africa", "Nigeria", "Egypt", "Morocco", "Indonesia",
	"Vietnam", "Thailand",
}

var industryNames = []string{
	"Energy", "Transport", "Agriculture", "Construction", "Chemicals",
	"Textiles", "Mining", "Finance", "Technology", "Retail",
	"Food & Beverage", "Pharmaceuticals", "Automotive", "Aviation",
	"Shipping", "Utilities",
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// row is one generated CSV record.
type row struct {
	entity string
	year   int
	ccii   float64
	gwe    float64
	gwghg  float64
}

// generateRows produces one row per (entity, year) pair. Each entity is
// assigned a stable profile so its values stay plausible across years
// instead of jumping around the full range.
func generateRows(entities []string, startYear, endYear int) []row {
	rows := make([]row, 0, len(entities)*(endYear-startYear+1))
	for _, entity := range entities {
		profile, _ := rand.Int(rand.Reader, big.NewInt(profileDivisor))
		for year := startYear; year <= endYear; year++ {
			rows = append(rows, generateRow(entity, year, profile.Int64()))
		}
	}
	return rows
}

// generateRow creates a single record for the entity's profile.
func generateRow(entity string, year int, profile int64) row {
	r := row{entity: entity, year: year}
	switch profile {
	case caseLeader:
		r.ccii = leaderCCIIMin + getRandomFloat()*leaderCCIIRange
		r.gwe = gwMin + getRandomFloat()*leaderGWRange
		r.gwghg = gwMin + getRandomFloat()*leaderGWRange
	case caseSymbolic:
		r.ccii = symbolicCCIIMin + getRandomFloat()*symbolicCCIIRange
		r.gwe = symbolicGWMin + getRandomFloat()*symbolicGWRange
		r.gwghg = symbolicGWMin + getRandomFloat()*symbolicGWRange
	case caseLaggard:
		r.ccii = laggardCCIIMin + getRandomFloat()*laggardCCIIRange
		r.gwe = gwMin + getRandomFloat()*gwRange
		r.gwghg = gwMin + getRandomFloat()*gwRange
	default:
		r.ccii = cciiMin + getRandomFloat()*cciiRange
		r.gwe = gwMin + getRandomFloat()*gwRange
		r.gwghg = gwMin + getRandomFloat()*gwRange
	}
	return r
}

// pickEntities returns n names from the pool, cycling with a numeric
// suffix when n exceeds the pool size.
func pickEntities(pool []string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name := pool[i%len(pool)]
		if i >= len(pool) {
			name = name + " " + strconv.Itoa(i/len(pool)+1)
		}
		out = append(out, name)
	}
	return out
}

// writeCSV writes rows to path in the column layout the service loads.
func writeCSV(ctx context.Context, path, entityColumn string, rows []row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{entityColumn, "year", "ccii", "gwe", "gwghg"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.entity,
			strconv.Itoa(r.year),
			strconv.FormatFloat(r.ccii, 'f', 3, 64),
			strconv.FormatFloat(r.gwe, 'f', 3, 64),
			strconv.FormatFloat(r.gwghg, 'f', 3, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	logger.Get().Info(ctx, "wrote dataset",
		logger.String("path", path),
		logger.Int("rows", len(rows)))
	return nil
}
