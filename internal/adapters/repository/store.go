// Package repository defines the dataset store interface and errors.
package repository

import (
	"context"

	"github.com/okian/greenwatch/internal/domain/model"
)

// Store provides read-only access to the precomputed index datasets.
type Store interface {
	// Dataset returns the parsed table for a CSV path. The result is
	// memoized per path for the process lifetime; repeated calls with
	// the same path return the same in-memory object. Callers must not
	// mutate the returned dataset.
	//
	// Returns ErrDataLoad when the file is missing, a row is malformed,
	// the year column is not integer-coercible, or an (entity, year)
	// pair repeats. A failed load is never cached partially.
	Dataset(ctx context.Context, path string) (*model.Dataset, error)

	// Paths returns the paths currently held in the cache.
	Paths(ctx context.Context) []string
}
