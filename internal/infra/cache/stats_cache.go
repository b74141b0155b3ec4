// Package cache holds the Redis-backed statistics cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/util"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	statsKey        = "bazaar:stats:base-info"
	defaultStatsTTL = time.Minute
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis stats cache, or a no-op cache when redis.addr is empty.
func New(params Params) service.StatsCache {
	cfg := params.Config.Redis
	if cfg.Addr == "" {
		params.Logger.Info("Redis address not configured, statistics are not cached")

		return NewNoopStatsCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Ping failures only warn; Get and Set degrade to misses.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, statistics cache degraded", "error", err)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	ttl := cfg.StatsTTL
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	params.Logger.Info("Statistics cache enabled",
		slog.String("addr", cfg.Addr),
		slog.String("ttl", util.FormatDuration(ttl)),
	)

	return NewRedisStatsCache(client, ttl, params.Logger)
}

type redisStatsCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStatsCache stores statistics as JSON under a single key.
func NewRedisStatsCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) service.StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}

	return &redisStatsCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisStatsCache) Get(ctx context.Context) (*entity.PlatformStats, bool) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Failed to read cached statistics", "error", err)
		}

		return nil, false
	}

	var stats entity.PlatformStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.logger.WarnContext(ctx, "Discarding malformed cached statistics", "error", err)

		return nil, false
	}

	return &stats, true
}

func (c *redisStatsCache) Set(ctx context.Context, stats *entity.PlatformStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode statistics", "error", err)

		return
	}

	if err := c.client.Set(ctx, statsKey, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Failed to cache statistics", "error", err)
	}
}

type noopStatsCache struct{}

// NewNoopStatsCache returns a cache that never hits.
func NewNoopStatsCache() service.StatsCache {
	return noopStatsCache{}
}

func (noopStatsCache) Get(context.Context) (*entity.PlatformStats, bool) { return nil, false }

func (noopStatsCache) Set(context.Context, *entity.PlatformStats) {}
