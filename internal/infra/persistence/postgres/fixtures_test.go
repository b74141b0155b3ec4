package postgres_test

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/persistence/postgres"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Profile:      &entity.Profile{Role: role},
	}
	require.NoError(t, postgres.NewUserRepository(db).Create(context.Background(), user))

	return user
}

func newOffer(ownerID entity.User, title string, prices ...string) *entity.Offer {
	offer := &entity.Offer{
		UserID:      ownerID.ID,
		Title:       title,
		Description: title + " description",
	}
	for i, offerType := range entity.OfferTypes() {
		offer.Details = append(offer.Details, &entity.OfferDetail{
			Title:              title + " " + offerType.String(),
			Revisions:          i + 1,
			DeliveryTimeInDays: 7 - i*2,
			Price:              decimal.RequireFromString(prices[i]),
			Features:           []string{"feature " + offerType.String()},
			OfferType:          offerType,
		})
	}
	offer.RefreshSummary()

	return offer
}

func seedOffer(t *testing.T, db *gorm.DB, owner *entity.User, title string, prices ...string) *entity.Offer {
	t.Helper()

	offer := newOffer(*owner, title, prices...)
	require.NoError(t, postgres.NewOfferRepository(db).Create(context.Background(), offer))

	return offer
}
