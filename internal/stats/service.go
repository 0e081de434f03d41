package stats

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"
)

// Service serves the dashboard overview, preferring the cache and
// collapsing concurrent misses into a single database query.
type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
	group  singleflight.Group
}

// NewService constructs a new Service.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Overview returns the cached aggregate when fresh, recomputing on a
// miss. Cache failures degrade to a direct computation, never an error.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	cached, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("read overview cache", slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	v, err, _ := s.group.Do(overviewKey, func() (any, error) {
		overview, err := s.repo.CollectOverview(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, overview); err != nil {
			s.logger.Warn("write overview cache", slog.Any("error", err))
		}
		return overview, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Overview), nil
}

// Refresh recomputes the overview and replaces the cached copy. Used by
// the background warmup job.
func (s *Service) Refresh(ctx context.Context) (*Overview, error) {
	overview, err := s.repo.CollectOverview(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, overview); err != nil {
		return nil, err
	}
	return overview, nil
}
