package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the review registry.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, caller entity.Caller, input *CreateReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, caller entity.Caller, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, caller entity.Caller, reviewID uuid.UUID) error
	GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)
	ListReviews(ctx context.Context, input *ListReviewsInput) ([]*entity.Review, error)
}

// CreateReviewInput defines the data required to review a business.
type CreateReviewInput struct {
	BusinessUserID *uuid.UUID
	Rating         int
	Description    string
}

// UpdateReviewInput is a partial review update.
type UpdateReviewInput struct {
	Rating      *int
	Description *string
}

// ListReviewsInput carries the review list filters.
type ListReviewsInput struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       string
}
