package postgres

import (
	"context"
	"slices"
	"strings"

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

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

var offerOrderColumns = map[repository.OfferOrdering]clause.OrderByColumn{
	repository.OfferOrderUpdatedAt:           {Column: clause.Column{Name: "updated_at"}},
	repository.OfferOrderUpdatedAtDesc:       {Column: clause.Column{Name: "updated_at"}, Desc: true},
	repository.OfferOrderMinPrice:            {Column: clause.Column{Name: "min_price"}},
	repository.OfferOrderMinPriceDesc:        {Column: clause.Column{Name: "min_price"}, Desc: true},
	repository.OfferOrderMinDeliveryTime:     {Column: clause.Column{Name: "min_delivery_time"}},
	repository.OfferOrderMinDeliveryTimeDesc: {Column: clause.Column{Name: "min_delivery_time"}, Desc: true},
}

// Create inserts the offer row and its detail rows.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt
	for i := range offerM.Details {
		offer.Details[i].ID = offerM.Details[i].ID
		offer.Details[i].OfferID = offerM.ID
	}

	return nil
}

// FindByID retrieves an offer with its details.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("id = ?", id).
		First(&offerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	return toOfferDomain(&offerM), nil
}

// FindDetailByID retrieves a single tier.
func (repo *offerRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	var detailM model.OfferDetailModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&detailM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail")
	}

	return toOfferDetailDomain(&detailM), nil
}

// Update saves the header columns and the summary columns.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM := &model.OfferModel{
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		MinPrice:        offer.MinPrice,
		MinDeliveryTime: offer.MinDeliveryTime,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{ID: offer.ID}).
		Select("Title", "Image", "Description", "MinPrice", "MinDeliveryTime", "UpdatedAt").
		Updates(offerM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// UpdateDetail saves the mutable columns of one tier.
func (repo *offerRepository) UpdateDetail(ctx context.Context, detail *entity.OfferDetail) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferDetailModel{ID: detail.ID}).
		Select("Title", "Revisions", "DeliveryTimeInDays", "Price", "Features").
		Updates(&model.OfferDetailModel{
			Title:              detail.Title,
			Revisions:          detail.Revisions,
			DeliveryTimeInDays: detail.DeliveryTimeInDays,
			Price:              detail.Price,
			Features:           detail.Features,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer detail")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferDetailNotFound
	}

	return nil
}

// Delete removes the offer and its details.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("offer_id = ?", id).Delete(&model.OfferDetailModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete offer details")
	}

	result := db.Where("id = ?", id).Delete(&model.OfferModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// List applies the filter and returns one page plus the total match count.
func (repo *offerRepository) List(ctx context.Context, filter repository.OfferFilter) ([]*entity.Offer, int64, error) {
	var total int64
	if err := repo.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count offers")
	}

	order, ok := offerOrderColumns[filter.Ordering]
	if !ok {
		order = offerOrderColumns[repository.OfferOrderUpdatedAtDesc]
	}
	query := repo.filtered(ctx, filter).Order(order).Order("id")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var offerMs []*model.OfferModel
	if err := query.Preload("Details").Find(&offerMs).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerMs))
	for _, offerM := range offerMs {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, total, nil
}

func (repo *offerRepository) filtered(ctx context.Context, filter repository.OfferFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.OfferModel{})

	if filter.CreatorID != nil {
		query = query.Where("user_id = ?", *filter.CreatorID)
	}
	if filter.MinPrice != nil {
		query = query.Where("min_price >= ?", *filter.MinPrice)
	}
	if filter.MaxDeliveryTime != nil {
		query = query.Where("min_delivery_time <= ?", *filter.MaxDeliveryTime)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where("(LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\')", pattern, pattern)
	}

	return query
}

// Count returns the number of offers.
func (repo *offerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.OfferModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count offers")
	}

	return count, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	details := make([]*entity.OfferDetail, 0, len(data.Details))
	for i := range data.Details {
		details = append(details, toOfferDetailDomain(&data.Details[i]))
	}
	sortDetailsByTier(details)

	return &entity.Offer{
		ID:              data.ID,
		UserID:          data.UserID,
		Title:           data.Title,
		Image:           data.Image,
		Description:     data.Description,
		MinPrice:        data.MinPrice,
		MinDeliveryTime: data.MinDeliveryTime,
		Details:         details,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	details := make([]model.OfferDetailModel, 0, len(data.Details))
	for _, detail := range data.Details {
		details = append(details, *fromOfferDetailDomain(detail))
	}

	return &model.OfferModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Title:           data.Title,
		Image:           data.Image,
		Description:     data.Description,
		MinPrice:        data.MinPrice,
		MinDeliveryTime: data.MinDeliveryTime,
		Details:         details,
	}
}

func toOfferDetailDomain(data *model.OfferDetailModel) *entity.OfferDetail {
	return &entity.OfferDetail{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           data.Features,
		OfferType:          entity.OfferType(data.OfferType),
	}
}

func fromOfferDetailDomain(data *entity.OfferDetail) *model.OfferDetailModel {
	return &model.OfferDetailModel{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           data.Features,
		OfferType:          string(data.OfferType),
	}
}

// sortDetailsByTier orders details basic, standard, premium.
func sortDetailsByTier(details []*entity.OfferDetail) {
	tiers := entity.OfferTypes()
	slices.SortStableFunc(details, func(a, b *entity.OfferDetail) int {
		return slices.Index(tiers, a.OfferType) - slices.Index(tiers, b.OfferType)
	})
}
