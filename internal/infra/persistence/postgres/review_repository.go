package postgres

import (
	"context"
	"math"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

var reviewOrderColumns = map[repository.ReviewOrdering]clause.OrderByColumn{
	repository.ReviewOrderUpdatedAt:     {Column: clause.Column{Name: "updated_at"}},
	repository.ReviewOrderUpdatedAtDesc: {Column: clause.Column{Name: "updated_at"}, Desc: true},
	repository.ReviewOrderRating:        {Column: clause.Column{Name: "rating"}},
	repository.ReviewOrderRatingDesc:    {Column: clause.Column{Name: "rating"}, Desc: true},
}

// Create persists a review, translating the pair uniqueness violation.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrReviewAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a single review.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

// Update saves rating and description.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{ID: review.ID}).
		Select("Rating", "Description", "UpdatedAt").
		Updates(&model.ReviewModel{
			Rating:      review.Rating,
			Description: review.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes the review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// List returns the reviews matching the filter.
func (repo *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read)

	if filter.BusinessUserID != nil {
		query = query.Where("business_user_id = ?", *filter.BusinessUserID)
	}
	if filter.ReviewerID != nil {
		query = query.Where("reviewer_id = ?", *filter.ReviewerID)
	}

	if order, ok := reviewOrderColumns[filter.Ordering]; ok {
		query = query.Order(order)
	} else {
		query = query.Order("updated_at").Order("rating")
	}

	var reviewMs []*model.ReviewModel
	if err := query.Order("id").Find(&reviewMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Summary returns the review count and the average rating rounded to one decimal.
func (repo *reviewRepository) Summary(ctx context.Context) (repository.ReviewSummary, error) {
	var row struct {
		Count   int64
		Average *float64
	}

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ReviewModel{}).
		Select("COUNT(*) AS count, AVG(rating) AS average").
		Scan(&row).Error
	if err != nil {
		return repository.ReviewSummary{}, domainerrors.NewDatabaseExecuteError(err, "failed to summarize reviews")
	}

	summary := repository.ReviewSummary{Count: row.Count}
	if row.Average != nil {
		summary.AverageRating = math.Round(*row.Average*10) / 10
	}

	return summary, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:             data.ID,
		BusinessUserID: data.BusinessUserID,
		ReviewerID:     data.ReviewerID,
		Rating:         data.Rating,
		Description:    data.Description,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:             data.ID,
		BusinessUserID: data.BusinessUserID,
		ReviewerID:     data.ReviewerID,
		Rating:         data.Rating,
		Description:    data.Description,
	}
}
