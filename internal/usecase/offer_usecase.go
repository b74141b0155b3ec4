package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferUsecase defines the operations of the offer aggregate.
type OfferUsecase interface {
	CreateOffer(ctx context.Context, caller entity.Caller, input *CreateOfferInput) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, caller entity.Caller, offerID uuid.UUID, input *UpdateOfferInput) (*UpdateOfferOutput, error)
	DeleteOffer(ctx context.Context, caller entity.Caller, offerID uuid.UUID) error
	GetOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error)
	GetOfferDetail(ctx context.Context, detailID uuid.UUID) (*entity.OfferDetail, error)
	ListOffers(ctx context.Context, input *ListOffersInput) (*OfferPage, error)
	UploadOfferImage(ctx context.Context, caller entity.Caller, offerID uuid.UUID, upload *UploadInput) (*entity.Offer, error)
	OfferQRCode(ctx context.Context, offerID uuid.UUID) ([]byte, error)
	ResolveOfferCode(ctx context.Context, payload string) (*entity.Offer, error)
}

// --- Input DTOs ---

// OfferDetailInput is one tier of a new offer.
type OfferDetailInput struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string
	OfferType          entity.OfferType
}

// CreateOfferInput defines the data required to publish an offer.
type CreateOfferInput struct {
	Title       string
	Image       string
	Description string
	Details     []OfferDetailInput
}

// OfferDetailPatch addresses one tier by type. Nil fields are left untouched.
type OfferDetailPatch struct {
	OfferType          entity.OfferType
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *decimal.Decimal
	Features           []string // nil leaves the features untouched
}

// UpdateOfferInput is a partial offer update.
type UpdateOfferInput struct {
	Title       *string
	Image       *string
	Description *string
	Details     []OfferDetailPatch
}

// ListOffersInput carries the offer list filters. Ordering is one of the
// repository.OfferOrdering values; empty means newest update first.
type ListOffersInput struct {
	CreatorID       *uuid.UUID
	MinPrice        *decimal.Decimal
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

// --- Output DTOs ---

// UpdateOfferOutput is the refreshed offer plus one result per tier patch.
type UpdateOfferOutput struct {
	Offer         *entity.Offer
	DetailResults []entity.DetailUpdateResult
}

// OfferPage is one page of the offer list.
type OfferPage struct {
	Count    int64
	Page     int
	PageSize int
	Results  []*entity.Offer
}
