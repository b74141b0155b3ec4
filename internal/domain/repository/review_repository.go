package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound is returned when no review matches the lookup.
	ErrReviewNotFound = errors.New("review not found")
	// ErrReviewAlreadyExists is returned when the reviewer already rated the business.
	ErrReviewAlreadyExists = errors.New("review already exists")
)

// ReviewOrdering is a sortable column of the review list. A leading "-" sorts descending.
type ReviewOrdering string

const (
	ReviewOrderUpdatedAt     ReviewOrdering = "updated_at"
	ReviewOrderUpdatedAtDesc ReviewOrdering = "-updated_at"
	ReviewOrderRating        ReviewOrdering = "rating"
	ReviewOrderRatingDesc    ReviewOrdering = "-rating"
)

// IsValid checks if the ordering names a sortable column.
func (o ReviewOrdering) IsValid() bool {
	switch o {
	case ReviewOrderUpdatedAt, ReviewOrderUpdatedAtDesc, ReviewOrderRating, ReviewOrderRatingDesc:
		return true
	default:
		return false
	}
}

// ReviewFilter narrows the review list. Empty Ordering sorts by updated_at, then rating.
type ReviewFilter struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       ReviewOrdering
}

// ReviewSummary aggregates every review on the platform.
type ReviewSummary struct {
	Count         int64
	AverageRating float64
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	// Create persists a review. It returns ErrReviewAlreadyExists when the pair is taken.
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// Update saves rating and description.
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
	Summary(ctx context.Context) (ReviewSummary, error)
}
