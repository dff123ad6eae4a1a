package places

import (
	"context"
	"expvar"
	"time"

	"go.uber.org/zap"
)

const allPlacesKey = "all"

var (
	cacheHits   = expvar.NewInt("places_cache_hits")
	cacheMisses = expvar.NewInt("places_cache_misses")
)

type Service struct {
	fetcher Fetcher
	cache   Cache
	ttl     time.Duration
	logger  *zap.SugaredLogger
}

func NewService(fetcher Fetcher, cache Cache, ttl time.Duration, logger *zap.SugaredLogger) *Service {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Service{fetcher: fetcher, cache: cache, ttl: ttl, logger: logger}
}

// List returns the places of one category, or all of them when category is
// empty. Cache failures are logged and fall through to the geodata service.
func (s *Service) List(ctx context.Context, category Category) ([]Place, error) {
	all, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return all, nil
	}

	filtered := make([]Place, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) all(ctx context.Context) ([]Place, error) {
	cached, ok, err := s.cache.Get(ctx, allPlacesKey)
	if err != nil {
		s.logger.Warnw("places cache read failed", "error", err)
	}
	if ok {
		cacheHits.Add(1)
		return cached, nil
	}
	cacheMisses.Add(1)

	fetched, err := s.fetcher.FetchPlaces(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, allPlacesKey, fetched, s.ttl); err != nil {
		s.logger.Warnw("places cache write failed", "error", err)
	}
	return fetched, nil
}
