package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	userRepo   repository.UserRepository
	offerRepo  repository.OfferRepository
	reviewRepo repository.ReviewRepository
	cache      service.StatsCache
	logger     *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	OfferRepo  repository.OfferRepository
	ReviewRepo repository.ReviewRepository
	Cache      service.StatsCache
	Logger     *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		userRepo:   params.UserRepo,
		offerRepo:  params.OfferRepo,
		reviewRepo: params.ReviewRepo,
		cache:      params.Cache,
		logger:     params.Logger,
	}
}

// BaseInfo returns the platform summary, served from cache while it is fresh.
func (srv *statsService) BaseInfo(ctx context.Context) (*entity.PlatformStats, error) {
	if stats, ok := srv.cache.Get(ctx); ok {
		return stats, nil
	}

	summary, err := srv.reviewRepo.Summary(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize reviews")
	}
	businesses, err := srv.userRepo.CountByRole(ctx, entity.RoleBusiness)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count business profiles")
	}
	offers, err := srv.offerRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	stats := &entity.PlatformStats{
		ReviewCount:          summary.Count,
		AverageRating:        summary.AverageRating,
		BusinessProfileCount: businesses,
		OfferCount:           offers,
	}
	srv.cache.Set(ctx, stats)
	loggerFrom(ctx, srv.logger).Debug("Platform stats recomputed", "reviews", stats.ReviewCount, "offers", stats.OfferCount)

	return stats, nil
}
