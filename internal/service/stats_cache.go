package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-assessment/internal/cache"
	"ai-assessment/internal/domain"
	"ai-assessment/internal/logger"

	"go.uber.org/zap"
)

// ErrStatsNotCached is returned when no cached statistics exist for a cohort.
var ErrStatsNotCached = errors.New("cohort statistics not found in cache")

// StatsCacheService caches cohort statistics between submissions.
type StatsCacheService interface {
	Get(ctx context.Context, cohort string) (*domain.CohortStatistics, error)
	Put(ctx context.Context, stats *domain.CohortStatistics) error
	Invalidate(ctx context.Context, cohort string) error
}

type statsCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewStatsCacheService returns a no-op implementation when cache is nil.
func NewStatsCacheService(c domain.Cache, ttl time.Duration) StatsCacheService {
	if c == nil {
		logger.Get().Info("Statistics cache disabled, every request reads the record store")
		return &noopStatsCacheService{}
	}
	return &statsCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *statsCacheServiceImpl) Get(ctx context.Context, cohort string) (*domain.CohortStatistics, error) {
	key := cache.CohortStatsKey(cohort)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrStatsNotCached
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get statistics from cache for key %s", key), err)
	}
	if data == "" {
		return nil, ErrStatsNotCached
	}

	var stats domain.CohortStatistics
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal statistics from cache for key %s", key), err)
	}
	return &stats, nil
}

func (s *statsCacheServiceImpl) Put(ctx context.Context, stats *domain.CohortStatistics) error {
	if stats == nil {
		return domain.NewInvalidInputError("cannot cache nil statistics")
	}

	key := cache.CohortStatsKey(stats.Cohort)
	data, err := json.Marshal(stats)
	if err != nil {
		return domain.NewInternalError("failed to marshal statistics for caching", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to set statistics to cache for key %s", key), err)
	}
	logger.Get().Debug("Cached cohort statistics", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *statsCacheServiceImpl) Invalidate(ctx context.Context, cohort string) error {
	key := cache.CohortStatsKey(cohort)
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to invalidate statistics for key %s", key), err)
	}
	return nil
}

type noopStatsCacheService struct{}

func (s *noopStatsCacheService) Get(ctx context.Context, cohort string) (*domain.CohortStatistics, error) {
	return nil, ErrStatsNotCached
}

func (s *noopStatsCacheService) Put(ctx context.Context, stats *domain.CohortStatistics) error {
	return nil
}

func (s *noopStatsCacheService) Invalidate(ctx context.Context, cohort string) error {
	return nil
}
