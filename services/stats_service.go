package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/constants"
	"github.com/dhu2022-dev/mental-health-checkin/dto"
	"github.com/dhu2022-dev/mental-health-checkin/errors"
	"github.com/dhu2022-dev/mental-health-checkin/models"
	"github.com/dhu2022-dev/mental-health-checkin/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// StatsServiceOptions contains the dependencies of StatsService
type StatsServiceOptions struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Logger   logger.Logger
	Timezone string // IANA name of the server's default zone, from APP_TIMEZONE
}

// StatsService serves day-bucketed mood charts, cached per window and zone
type StatsService struct {
	db       *gorm.DB
	redis    *redis.Client
	logger   logger.Logger
	timezone string
}

// NewStatsService creates a StatsService
func NewStatsService(opts StatsServiceOptions) *StatsService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &StatsService{
		db:       opts.DB,
		redis:    opts.Redis,
		logger:   l,
		timezone: opts.Timezone,
	}
}

// GetDaily returns day buckets for the trailing window of `days` days
// (0 = all time) in the viewer's zone. Results are cached briefly; the data
// volume is personal-journal sized, so aggregation is recomputed from the
// raw rows, never stored.
func (s *StatsService) GetDaily(ctx context.Context, days int, tz string) ([]dto.DayBucket, error) {
	if tz == "" {
		tz = s.timezone
	}
	key := fmt.Sprintf("%s%d:%s", constants.StatsCachePrefix, days, tz)

	if s.redis != nil {
		var cached []dto.DayBucket
		if hit, err := GetFromRedis(ctx, s.redis, key, &cached); err == nil && hit {
			return cached, nil
		} else if err != nil {
			s.logger.Error("stats cache read failed: %v", err)
		}
	}

	loc := LoadViewerLocation(tz)

	tx := s.db.WithContext(ctx).Model(&models.CheckIn{})
	if days > 0 {
		now := time.Now().In(loc)
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -(days - 1))
		tx = tx.Where("recorded_at >= ?", from)
	}

	var checkIns []models.CheckIn
	if err := tx.Find(&checkIns).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to fetch check-ins", err)
	}

	buckets := AggregateDaily(checkIns, loc)

	if s.redis != nil {
		if err := SetToRedis(ctx, s.redis, key, buckets, constants.StatsCacheTTL); err != nil {
			s.logger.Error("stats cache write failed: %v", err)
		}
	}

	return buckets, nil
}

// Warm precomputes the default dashboard windows in the server zone.
// Called by the nightly cron right after the day boundary so the first
// dashboard view of the day is a cache hit.
func (s *StatsService) Warm(ctx context.Context) error {
	if s.redis != nil {
		if err := DeleteFromRedis(ctx, s.redis, constants.StatsCachePrefix+"*"); err != nil {
			return err
		}
	}
	for _, days := range constants.StatsWarmWindows {
		if _, err := s.GetDaily(ctx, days, s.timezone); err != nil {
			return err
		}
	}
	return nil
}
