// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	repository "github.com/okian/greenwatch/internal/adapters/repository"
	"github.com/okian/greenwatch/internal/domain/model"
	"github.com/okian/greenwatch/internal/domain/quadrant"
	"github.com/okian/greenwatch/internal/domain/ranking"
	"github.com/okian/greenwatch/internal/domain/types"
	"github.com/okian/greenwatch/internal/session"
	"github.com/okian/greenwatch/pkg/logger"
	"github.com/okian/greenwatch/pkg/metrics"
)

// AllYears selects every year of a dataset instead of a single one.
const AllYears = 0

// Service implements the API dependencies for the dashboard. It owns
// the dataset cache and the session registry explicitly; there is no
// process-global state beyond the metrics singleton.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	sessions *session.Registry

	// Configuration
	countryPath  string
	industryPath string
	topK         int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets a custom dataset store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCountryPath sets the country-level CSV path.
func WithCountryPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.countryPath = path
		}
	}
}

// WithIndustryPath sets the industry-level CSV path.
func WithIndustryPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.industryPath = path
		}
	}
}

// WithTopK sets the default number of ranked entities per year.
func WithTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		countryPath:  "countrylevel.csv",
		industryPath: "industrylevel.csv",
		topK:         ranking.DefaultK,
		sessions:     session.NewRegistry(),
		logger:       nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service and warms the dataset cache. A dataset
// that fails to load is logged and retried lazily on first request so
// one broken file does not take down the other section.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if s.store == nil {
		s.store = repository.NewCSVStore()
	}

	for _, path := range []string{s.countryPath, s.industryPath} {
		if _, err := s.store.Dataset(ctx, path); err != nil {
			s.logger.Warn(ctx, "dataset warm-up failed; section will retry on demand",
				logger.String("path", path), logger.Error(err))
		}
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.String("countryCSV", s.countryPath),
		logger.String("industryCSV", s.industryPath),
		logger.Int("topK", s.topK),
	)

	return nil
}

// Stop shuts down the service. All state is in memory, so this only
// flips the started flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// MapSeries returns the choropleth series for one indicator. Pass
// AllYears to get the full animation series, or a concrete year for the
// single-year view. A year with no rows yields an empty point set.
func (s *Service) MapSeries(ctx context.Context, metric model.Metric, year int) (types.MapSeries, error) {
	ds, err := s.store.Dataset(ctx, s.countryPath)
	if err != nil {
		return types.MapSeries{}, err
	}

	ind := model.IndicatorFor(metric)
	out := types.MapSeries{
		Indicator: types.Indicator{Key: string(ind.Key), Title: ind.Title, ColorScale: ind.ColorScale},
		Years:     ds.Years(),
		Points:    []types.MapPoint{},
	}
	for _, r := range ds.Records {
		if year != AllYears && r.Year != year {
			continue
		}
		out.Points = append(out.Points, types.MapPoint{Country: r.Entity, Year: r.Year, Value: r.Value(metric)})
	}

	metrics.RecordMapSeriesServed()
	return out, nil
}

// TopTrajectories returns the top-k rank trajectories for one indicator
// over the country dataset. k <= 0 selects the configured default. An
// empty dataset degrades to an empty chart rather than an error.
func (s *Service) TopTrajectories(ctx context.Context, metric model.Metric, k int) ([]types.Trajectory, error) {
	if k <= 0 {
		k = s.topK
	}

	ds, err := s.store.Dataset(ctx, s.countryPath)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	entries, err := ranking.TopK(ds, metric, k)
	if err != nil {
		if errors.Is(err, ranking.ErrEmptyGroup) {
			return []types.Trajectory{}, nil
		}
		return nil, err
	}
	metrics.RecordRankingComputed()
	metrics.RecordRankingLatency(float64(time.Since(start).Milliseconds()))

	return ranking.Trajectories(entries), nil
}

// QuadrantView returns the industry scatter with fixed reference lines
// and annotations. The x axis is always CCII; yMetric selects the
// greenwashing axis. Pass AllYears for the full animation or a concrete
// year for a single frame; a year with no rows yields no frames.
func (s *Service) QuadrantView(ctx context.Context, yMetric model.Metric, year int) (types.QuadrantView, error) {
	ds, err := s.store.Dataset(ctx, s.industryPath)
	if err != nil {
		return types.QuadrantView{}, err
	}

	start := time.Now()
	layout, err := quadrant.NewLayout(ds, model.MetricCCII, yMetric)
	if err != nil {
		return types.QuadrantView{}, err
	}
	metrics.RecordQuadrantLayoutBuilt()
	metrics.RecordQuadrantLatency(float64(time.Since(start).Milliseconds()))

	xMin, xMax, yMin, yMax := layout.Extrema()
	view := types.QuadrantView{
		XMetric:     string(model.MetricCCII),
		YMetric:     string(yMetric),
		XRef:        layout.XRef(),
		YRef:        layout.YRef(),
		XMin:        xMin,
		XMax:        xMax,
		YMin:        yMin,
		YMax:        yMax,
		Annotations: layout.Annotations(),
		Years:       layout.Years(),
		Frames:      []types.Frame{},
	}

	if year == AllYears {
		view.Frames = layout.Frames()
		return view, nil
	}

	frame, err := layout.Frame(year)
	if err != nil {
		// Empty year: degrade to an empty chart, references intact.
		if errors.Is(err, quadrant.ErrEmptyGroup) {
			return view, nil
		}
		return types.QuadrantView{}, err
	}
	view.Frames = append(view.Frames, frame)
	return view, nil
}

// Indicators returns the fixed display configuration table.
func (s *Service) Indicators(ctx context.Context) []types.Indicator {
	configs := model.Indicators()
	out := make([]types.Indicator, len(configs))
	for i, c := range configs {
		out[i] = types.Indicator{Key: string(c.Key), Title: c.Title, ColorScale: c.ColorScale}
	}
	return out
}

// NewSession mints a session ID for the like counters.
func (s *Service) NewSession(ctx context.Context) string {
	return s.sessions.NewSession(ctx)
}

// Like bumps a reaction counter for the session and returns the new counts.
func (s *Service) Like(ctx context.Context, sessionID, kind string) (types.LikeCounts, error) {
	k, err := session.ParseKind(kind)
	if err != nil {
		return types.LikeCounts{}, err
	}
	return s.sessions.Increment(ctx, sessionID, k)
}

// LikeCounts returns the session's current reaction counters.
func (s *Service) LikeCounts(ctx context.Context, sessionID string) types.LikeCounts {
	return s.sessions.Counts(ctx, sessionID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
		"topK":    s.topK,
	}

	if s.store != nil {
		stats["cachedDatasets"] = len(s.store.Paths(ctx))
	}
	if s.sessions != nil {
		sessions := s.sessions.Size()
		stats["sessions"] = sessions
		metrics.UpdateActiveSessions(sessions)
	}

	return stats
}
