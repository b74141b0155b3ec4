package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNoopStatsCache(t *testing.T) {
	cache := NewNoopStatsCache()
	ctx := context.Background()

	cache.Set(ctx, &entity.PlatformStats{ReviewCount: 3})
	stats, ok := cache.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, stats)
}

func TestRedisStatsCache_UnreachableServerMisses(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	cache := NewRedisStatsCache(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cache.Set(ctx, &entity.PlatformStats{ReviewCount: 3, AverageRating: 4.5})

	stats, ok := cache.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, stats)
}

func TestNewRedisStatsCache_DefaultTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() {
		_ = client.Close()
	})

	cache := NewRedisStatsCache(client, 0, slog.New(slog.NewTextHandler(io.Discard, nil))).(*redisStatsCache)
	assert.Equal(t, defaultStatsTTL, cache.ttl)
}
