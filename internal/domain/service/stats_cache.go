package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// StatsCache keeps the last computed platform statistics for a short while.
// Implementations degrade to a miss on backend failure.
type StatsCache interface {
	Get(ctx context.Context) (*entity.PlatformStats, bool)
	Set(ctx context.Context, stats *entity.PlatformStats)
}
