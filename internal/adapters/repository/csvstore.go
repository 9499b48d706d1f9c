package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/okian/greenwatch/internal/domain/model"
	"github.com/okian/greenwatch/pkg/metrics"

	"golang.org/x/sync/singleflight"
)

// Entity header names the loader accepts. Exactly one must be present.
var entityColumns = []string{"country", "industry"}

// Metric header names required in every dataset.
var metricColumns = []string{"ccii", "gwe", "gwghg"}

// CSVStore is a read-through cache over CSV files on disk. Each path is
// parsed at most once per process; concurrent first accesses of the
// same path are collapsed into a single parse via singleflight so the
// cache is never corrupted and no work is duplicated.
type CSVStore struct {
	mu    sync.RWMutex
	cache map[string]*model.Dataset
	group singleflight.Group
}

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// NewCSVStore creates an empty dataset store.
func NewCSVStore(opts ...Option) *CSVStore {
	s := &CSVStore{
		cache: make(map[string]*model.Dataset),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dataset returns the memoized dataset for path, parsing it on first
// access. See Store.Dataset for the contract.
func (s *CSVStore) Dataset(ctx context.Context, path string) (*model.Dataset, error) {
	s.mu.RLock()
	ds, ok := s.cache[path]
	s.mu.RUnlock()
	if ok {
		metrics.RecordDatasetCacheHit(path)
		return ds, nil
	}

	v, err, _ := s.group.Do(path, func() (any, error) {
		// Double-check under the write path: a concurrent flight may
		// have populated the cache between RUnlock and Do.
		s.mu.RLock()
		cached, ok := s.cache[path]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		start := time.Now()
		loaded, err := parseFile(path)
		if err != nil {
			metrics.RecordDatasetLoadError(path)
			return nil, err
		}
		metrics.RecordDatasetLoad(path)
		metrics.RecordDatasetLoadLatency(float64(time.Since(start).Milliseconds()))
		metrics.UpdateDatasetRecords(path, loaded.Len())

		s.mu.Lock()
		s.cache[path] = loaded
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Dataset), nil
}

// Paths returns the paths currently held in the cache.
func (s *CSVStore) Paths(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.cache))
	for p := range s.cache {
		out = append(out, p)
	}
	return out
}

// header maps the parsed CSV header to column indices.
type header struct {
	entity     string
	entityIdx  int
	yearIdx    int
	metricIdxs map[string]int
}

func parseHeader(row []string) (header, error) {
	h := header{entityIdx: -1, yearIdx: -1, metricIdxs: make(map[string]int)}
	for i, raw := range row {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case name == "year":
			h.yearIdx = i
		case contains(metricColumns, name):
			h.metricIdxs[name] = i
		case contains(entityColumns, name):
			if h.entityIdx >= 0 {
				return header{}, fmt.Errorf("multiple entity columns (%s, %s)", h.entity, name)
			}
			h.entity = name
			h.entityIdx = i
		}
	}
	if h.entityIdx < 0 {
		return header{}, fmt.Errorf("missing entity column (one of %s)", strings.Join(entityColumns, ", "))
	}
	if h.yearIdx < 0 {
		return header{}, fmt.Errorf("missing year column")
	}
	for _, m := range metricColumns {
		if _, ok := h.metricIdxs[m]; !ok {
			return header{}, fmt.Errorf("missing metric column %q", m)
		}
	}
	return h, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// parseFile reads and validates one CSV file. Any malformed row aborts
// the whole parse; no partially-coerced dataset is ever returned.
func parseFile(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataLoad, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataLoad, path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrDataLoad, path)
	}

	h, err := parseHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataLoad, path, err)
	}

	ds := &model.Dataset{EntityColumn: h.entity}
	seen := make(map[string]struct{}, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2 // 1-based, after the header

		entity := strings.TrimSpace(row[h.entityIdx])
		if entity == "" {
			return nil, fmt.Errorf("%w: %s:%d: empty %s", ErrDataLoad, path, line, h.entity)
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[h.yearIdx]))
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: year %q is not an integer", ErrDataLoad, path, line, row[h.yearIdx])
		}

		rec := model.Record{Entity: entity, Year: year}
		for name, idx := range h.metricIdxs {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%d: %s %q is not a number", ErrDataLoad, path, line, name, row[idx])
			}
			switch model.Metric(name) {
			case model.MetricCCII:
				rec.CCII = v
			case model.MetricGWE:
				rec.GWE = v
			case model.MetricGWGHG:
				rec.GWGHG = v
			}
		}

		key := entity + "\x00" + strconv.Itoa(year)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s:%d: duplicate (%s, year) pair (%s, %d)", ErrDataLoad, path, line, h.entity, entity, year)
		}
		seen[key] = struct{}{}

		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}
