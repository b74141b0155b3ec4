package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrOfferNotFound is returned when no offer matches the lookup.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrOfferDetailNotFound is returned when no offer tier matches the lookup.
	ErrOfferDetailNotFound = errors.New("offer detail not found")
)

// OfferOrdering is a sortable column of the offer list. A leading "-" sorts descending.
type OfferOrdering string

const (
	OfferOrderUpdatedAt           OfferOrdering = "updated_at"
	OfferOrderUpdatedAtDesc       OfferOrdering = "-updated_at"
	OfferOrderMinPrice            OfferOrdering = "min_price"
	OfferOrderMinPriceDesc        OfferOrdering = "-min_price"
	OfferOrderMinDeliveryTime     OfferOrdering = "min_delivery_time"
	OfferOrderMinDeliveryTimeDesc OfferOrdering = "-min_delivery_time"
)

// IsValid checks if the ordering names a sortable column.
func (o OfferOrdering) IsValid() bool {
	switch o {
	case OfferOrderUpdatedAt, OfferOrderUpdatedAtDesc,
		OfferOrderMinPrice, OfferOrderMinPriceDesc,
		OfferOrderMinDeliveryTime, OfferOrderMinDeliveryTimeDesc:
		return true
	default:
		return false
	}
}

// OfferFilter narrows and pages the offer list. Nil fields do not filter.
type OfferFilter struct {
	CreatorID       *uuid.UUID
	MinPrice        *decimal.Decimal // min_price >= MinPrice
	MaxDeliveryTime *int             // min_delivery_time <= MaxDeliveryTime
	Search          string           // case-insensitive match on title or description
	Ordering        OfferOrdering
	Offset          int
	Limit           int
}

// OfferRepository persists offers and their tiers.
type OfferRepository interface {
	// Create persists the offer and all of its details.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer with its details in tier order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindDetailByID retrieves a single tier.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// Update saves the offer header: title, image, description and the summary fields.
	Update(ctx context.Context, offer *entity.Offer) error

	// UpdateDetail saves every field of an existing tier except its type and offer.
	UpdateDetail(ctx context.Context, detail *entity.OfferDetail) error

	// Delete removes the offer and its details.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of offers with details and the total match count.
	List(ctx context.Context, filter OfferFilter) ([]*entity.Offer, int64, error)

	// Count returns the number of offers.
	Count(ctx context.Context) (int64, error)
}
