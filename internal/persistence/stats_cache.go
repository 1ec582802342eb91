package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
)

const statsKeyPrefix = "attendance:stats:"

// StatsCache stores computed daily statistics in Redis. A miss or an
// unreachable Redis is never an error for callers; they fall back to
// recomputing from the database.
type StatsCache struct {
	redis  *Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsCache builds the cache wrapper.
func NewStatsCache(r *Redis, ttl time.Duration, logger *zap.Logger) *StatsCache {
	return &StatsCache{redis: r, ttl: ttl, logger: logger}
}

// Get returns cached stats for a date, or (nil, false) on miss.
func (c *StatsCache) Get(ctx context.Context, date string) (*domain.DailyStats, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, false
	}
	payload, err := c.redis.Client.Get(ctx, statsKeyPrefix+date).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("stats cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var stats domain.DailyStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		c.logger.Warn("stats cache payload corrupt", zap.String("date", date), zap.Error(err))
		return nil, false
	}
	return &stats, true
}

// Set stores stats for a date with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, date string, stats domain.DailyStats) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, statsKeyPrefix+date, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached stats for a date after any attendance write.
func (c *StatsCache) Invalidate(ctx context.Context, date string) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	if err := c.redis.Client.Del(ctx, statsKeyPrefix+date).Err(); err != nil {
		c.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}
