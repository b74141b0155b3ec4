package entity

import (
	"strings"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetail(offerType OfferType, price int64, days int) *OfferDetail {
	return &OfferDetail{
		Title:              string(offerType) + " package",
		Revisions:          2,
		DeliveryTimeInDays: days,
		Price:              decimal.NewFromInt(price),
		Features:           []string{"Logo design"},
		OfferType:          offerType,
	}
}

func newTestOffer() *Offer {
	return &Offer{
		Title: "Grafikdesign-Paket",
		Details: []*OfferDetail{
			newTestDetail(OfferTypeBasic, 100, 5),
			newTestDetail(OfferTypeStandard, 200, 3),
			newTestDetail(OfferTypePremium, 500, 10),
		},
	}
}

func TestOffer_RefreshSummary(t *testing.T) {
	offer := newTestOffer()

	offer.RefreshSummary()

	assert.True(t, offer.MinPrice.Equal(decimal.NewFromInt(100)), "min price = %s", offer.MinPrice)
	assert.Equal(t, 3, offer.MinDeliveryTime)

	offer.DetailByType(OfferTypePremium).Price = decimal.RequireFromString("49.50")
	offer.RefreshSummary()

	assert.True(t, offer.MinPrice.Equal(decimal.RequireFromString("49.5")))
}

func TestOffer_RefreshSummary_NoDetails(t *testing.T) {
	offer := &Offer{MinPrice: decimal.NewFromInt(5), MinDeliveryTime: 2}

	offer.RefreshSummary()

	assert.True(t, offer.MinPrice.IsZero())
	assert.Zero(t, offer.MinDeliveryTime)
}

func TestOffer_ValidateForCreate_TierSet(t *testing.T) {
	tests := []struct {
		name    string
		details []*OfferDetail
		wantErr string
	}{
		{
			name: "missing tier",
			details: []*OfferDetail{
				newTestDetail(OfferTypeBasic, 100, 5),
				newTestDetail(OfferTypeStandard, 200, 3),
			},
			wantErr: "missing: premium",
		},
		{
			name: "duplicated tier",
			details: []*OfferDetail{
				newTestDetail(OfferTypeBasic, 100, 5),
				newTestDetail(OfferTypeBasic, 200, 3),
				newTestDetail(OfferTypePremium, 500, 10),
			},
			wantErr: "duplicated: basic",
		},
		{
			name: "fourth tier",
			details: []*OfferDetail{
				newTestDetail(OfferTypeBasic, 100, 5),
				newTestDetail(OfferTypeStandard, 200, 3),
				newTestDetail(OfferTypePremium, 500, 10),
				newTestDetail(OfferType("enterprise"), 900, 20),
			},
			wantErr: "unknown: enterprise",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := newTestOffer()
			offer.Details = tt.details

			err := offer.ValidateForCreate()

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, validationErr.Fields(), "details")
			assert.Contains(t, validationErr.Fields()["details"][0], tt.wantErr)
		})
	}
}

func TestOffer_ValidateForCreate_DetailFields(t *testing.T) {
	offer := newTestOffer()
	offer.Details[1].Revisions = -2
	offer.Details[1].Features = nil
	offer.Details[2].Price = decimal.Zero
	offer.Details[2].DeliveryTimeInDays = 0

	err := offer.ValidateForCreate()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := validationErr.Fields()
	assert.Contains(t, fields, "details[1].revisions")
	assert.Contains(t, fields, "details[1].features")
	assert.Contains(t, fields, "details[2].price")
	assert.Contains(t, fields, "details[2].delivery_time_in_days")
	assert.NotContains(t, fields, "details")
}

func TestOffer_ValidateForCreate_Valid(t *testing.T) {
	offer := newTestOffer()
	offer.Details[0].Revisions = UnlimitedRevisions

	assert.NoError(t, offer.ValidateForCreate())
}

func TestOfferDetail_Validate_PriceScale(t *testing.T) {
	detail := newTestDetail(OfferTypeBasic, 1, 1)
	detail.Price = decimal.RequireFromString("10.999")

	errs := detail.Validate()

	assert.Contains(t, errs, "price")
}

func TestOfferDetail_Validate_ColumnLimits(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*OfferDetail)
		wantField string
	}{
		{
			name:      "title too long",
			mutate:    func(d *OfferDetail) { d.Title = strings.Repeat("x", 300) },
			wantField: "title",
		},
		{
			name:   "multibyte title at the limit",
			mutate: func(d *OfferDetail) { d.Title = strings.Repeat("ä", MaxTextLength) },
		},
		{
			name:      "price above column precision",
			mutate:    func(d *OfferDetail) { d.Price = decimal.RequireFromString("123456789012.50") },
			wantField: "price",
		},
		{
			name:   "largest storable price",
			mutate: func(d *OfferDetail) { d.Price = MaxPrice },
		},
		{
			name:      "just above the largest price",
			mutate:    func(d *OfferDetail) { d.Price = decimal.RequireFromString("100000000") },
			wantField: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := newTestDetail(OfferTypeBasic, 10, 1)
			tt.mutate(detail)

			errs := detail.Validate()

			if tt.wantField == "" {
				assert.Empty(t, errs)

				return
			}
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestOffer_ValidateHeader_ColumnLimits(t *testing.T) {
	offer := newTestOffer()
	offer.Title = strings.Repeat("t", MaxTextLength+1)
	offer.Image = strings.Repeat("i", MaxTextLength+1)

	err := offer.ValidateForCreate()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Ensure this field has no more than 255 characters."}, validationErr.Fields()["title"])
	assert.Contains(t, validationErr.Fields(), "image")
}

func TestOfferDetail_Clone(t *testing.T) {
	detail := newTestDetail(OfferTypeBasic, 1, 1)

	cloned := detail.Clone()
	cloned.Features[0] = "changed"

	assert.Equal(t, "Logo design", detail.Features[0])
}
