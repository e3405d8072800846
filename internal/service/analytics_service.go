package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/thakur-sujal/ERP-Portal/internal/config"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
)

// AnalyticsTTL bounds how stale a cached dashboard payload may be.
const AnalyticsTTL = 60 * time.Second

// AnalyticsService serves the admin dashboards, caching each aggregate in
// Redis since they scan whole ledgers.
type AnalyticsService struct {
	repo *repository.AnalyticsRepository
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo *repository.AnalyticsRepository, rdb *redis.Client, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
		rdb:  rdb,
		log:  log.With().Str("component", "analytics_service").Logger(),
	}
}

// Overview returns the dashboard overview stats.
func (s *AnalyticsService) Overview(ctx context.Context) (*model.OverviewStats, error) {
	out := &model.OverviewStats{}
	err := cached(ctx, s, config.CacheKey.DashboardOverviewKey(), out, func() (interface{}, error) {
		return s.repo.Overview(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Attendance returns ledger-wide attendance aggregates.
func (s *AnalyticsService) Attendance(ctx context.Context) (*model.AttendanceAnalytics, error) {
	out := &model.AttendanceAnalytics{}
	err := cached(ctx, s, config.CacheKey.AttendanceAnalyticsKey(), out, func() (interface{}, error) {
		return s.repo.Attendance(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Grades returns ledger-wide grade aggregates.
func (s *AnalyticsService) Grades(ctx context.Context) (*model.GradeAnalytics, error) {
	out := &model.GradeAnalytics{}
	err := cached(ctx, s, config.CacheKey.GradeAnalyticsKey(), out, func() (interface{}, error) {
		return s.repo.Grades(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// cached fills dst from Redis when fresh, otherwise computes via fetch and
// stores the result. A cache write failure is logged, never surfaced.
func cached(ctx context.Context, s *AnalyticsService, key string, dst interface{}, fetch func() (interface{}, error)) error {
	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		if err := json.Unmarshal([]byte(raw), dst); err == nil {
			return nil
		}
	}

	fresh, err := fetch()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(fresh)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key, payload, AnalyticsTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Analytics cache write failed")
	}
	return nil
}
