package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var ratingMessage = fmt.Sprintf("Ensure this value is between %d and %d.", entity.MinRating, entity.MaxRating)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	metrics    service.MetricsRecorder
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Metrics    service.MetricsRecorder
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

// CreateReview records a customer's rating of a business.
func (srv *reviewService) CreateReview(ctx context.Context, caller entity.Caller, input *usecase.CreateReviewInput) (*entity.Review, error) {
	// 1. Only customers review
	if !caller.CanWriteReviews() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only customers can write reviews")
	}

	// 2. Validate the payload
	errs := domainerrors.FieldErrors{}
	switch {
	case input.BusinessUserID == nil:
		errs.Add("business_user", "This field is required.")
	case caller.Is(*input.BusinessUserID):
		errs.Add("business_user", "You cannot review yourself.")
	}
	if !entity.ValidRating(input.Rating) {
		errs.Add("rating", ratingMessage)
	}
	if err := errs.AsError(); err != nil {
		return nil, err
	}

	review := &entity.Review{
		BusinessUserID: *input.BusinessUserID,
		ReviewerID:     caller.UserID,
		Rating:         input.Rating,
		Description:    input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 3. The target must be an existing business account
		target, err := repoFactory.UserRepo().FindByID(ctx, review.BusinessUserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.NewFieldError("business_user", "Invalid pk - object does not exist.")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find business account")
		}
		if target.Role() != entity.RoleBusiness {
			return domainerrors.NewFieldError("business_user", "Only business accounts can be reviewed.")
		}

		// 4. One review per reviewer and business
		err = repoFactory.ReviewRepo().Create(ctx, review)
		if errors.Is(err, repository.ErrReviewAlreadyExists) {
			return errors.Wrap(domainerrors.ErrReviewAlreadyExists, "duplicate review")
		}

		return translateRepoError(err, "failed to create review")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.metrics.ReviewWritten(review.Rating)
	loggerFrom(ctx, srv.logger).Info("Review written", "reviewID", review.ID, "businessID", review.BusinessUserID, "reviewerID", caller.UserID)

	return review, nil
}

// UpdateReview edits rating and description. Only the reviewer or staff may edit.
func (srv *reviewService) UpdateReview(
	ctx context.Context,
	caller entity.Caller,
	reviewID uuid.UUID,
	input *usecase.UpdateReviewInput,
) (*entity.Review, error) {
	var updated *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return translateRepoError(err, "failed to find review")
		}
		if !caller.CanModify(review.ReviewerID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the reviewer can edit this review")
		}

		if input.Rating != nil {
			if !entity.ValidRating(*input.Rating) {
				return domainerrors.NewFieldError("rating", ratingMessage)
			}
			review.Rating = *input.Rating
		}
		if input.Description != nil {
			review.Description = *input.Description
		}

		if err := reviewRepo.Update(ctx, review); err != nil {
			return translateRepoError(err, "failed to update review")
		}
		updated, err = reviewRepo.FindByID(ctx, reviewID)

		return translateRepoError(err, "failed to reload review")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	loggerFrom(ctx, srv.logger).Info("Review updated", "reviewID", reviewID, "userID", caller.UserID)

	return updated, nil
}

// DeleteReview removes a review. Only the reviewer or staff may delete it.
func (srv *reviewService) DeleteReview(ctx context.Context, caller entity.Caller, reviewID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return translateRepoError(err, "failed to find review")
		}
		if !caller.CanModify(review.ReviewerID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the reviewer can delete this review")
		}

		return translateRepoError(reviewRepo.Delete(ctx, reviewID), "failed to delete review")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	loggerFrom(ctx, srv.logger).Info("Review deleted", "reviewID", reviewID, "userID", caller.UserID)

	return nil
}

// GetReview retrieves a single review.
func (srv *reviewService) GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get review")
	}

	return review, nil
}

// ListReviews returns the reviews matching the filters.
func (srv *reviewService) ListReviews(ctx context.Context, input *usecase.ListReviewsInput) ([]*entity.Review, error) {
	ordering := repository.ReviewOrdering(input.Ordering)
	if ordering != "" && !ordering.IsValid() {
		return nil, domainerrors.NewFieldError("ordering", fmt.Sprintf("%q is not a valid ordering.", input.Ordering))
	}

	reviews, err := srv.reviewRepo.List(ctx, repository.ReviewFilter{
		BusinessUserID: input.BusinessUserID,
		ReviewerID:     input.ReviewerID,
		Ordering:       ordering,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
