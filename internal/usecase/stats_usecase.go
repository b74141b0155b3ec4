package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// StatsUsecase provides the public platform summary.
type StatsUsecase interface {
	BaseInfo(ctx context.Context) (*entity.PlatformStats, error)
}
