package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-class-api/internal/models"
	appErrors "github.com/noah-isme/sma-class-api/pkg/errors"
)

const (
	cacheKeyDays    = "refdata:days"
	cacheKeyPeriods = "refdata:periods"
)

type cacheStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// RefDataService serves the fixed day and period reference sets, optionally
// backed by Redis. Only these immutable sets are cached; class data is
// always read from the database.
type RefDataService struct {
	repo    refDataReader
	cache   cacheStore
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewRefDataService constructs RefDataService. A nil cache disables caching.
func NewRefDataService(repo refDataReader, cache cacheStore, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *RefDataService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RefDataService{repo: repo, cache: cache, metrics: metrics, ttl: ttl, logger: logger}
}

// Days returns the teaching days in identity order.
func (s *RefDataService) Days(ctx context.Context) ([]models.Day, error) {
	var cached []models.Day
	if s.lookup(ctx, cacheKeyDays, &cached) {
		return cached, nil
	}

	days, err := s.repo.ListDays(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list days")
	}
	s.store(ctx, cacheKeyDays, days)
	return days, nil
}

// Periods returns the teaching periods in start-time order.
func (s *RefDataService) Periods(ctx context.Context) ([]models.Period, error) {
	var cached []models.Period
	if s.lookup(ctx, cacheKeyPeriods, &cached) {
		return cached, nil
	}

	periods, err := s.repo.ListPeriods(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list periods")
	}
	s.store(ctx, cacheKeyPeriods, periods)
	return periods, nil
}

func (s *RefDataService) lookup(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		s.metrics.RecordCacheHit()
		return true
	}
	s.metrics.RecordCacheMiss()
	if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("reference data cache read failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func (s *RefDataService) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("reference data cache write failed", zap.String("key", key), zap.Error(err))
	}
}
