package postgres_test

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferRepository_CreateAndFind(t *testing.T) {
	db := testdb.New(t)
	repo := postgres.NewOfferRepository(db)
	owner := seedUser(t, db, "shop", entity.RoleBusiness)

	offer := seedOffer(t, db, owner, "Logo design", "100", "200", "500")
	for _, detail := range offer.Details {
		assert.NotEqual(t, uuid.Nil, detail.ID)
		assert.Equal(t, offer.ID, detail.OfferID)
	}

	found, err := repo.FindByID(context.Background(), offer.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(found.MinPrice))
	assert.Equal(t, 3, found.MinDeliveryTime)
	require.Len(t, found.Details, 3)
	assert.Equal(t, entity.OfferTypeBasic, found.Details[0].OfferType)
	assert.Equal(t, entity.OfferTypePremium, found.Details[2].OfferType)
	assert.Equal(t, []string{"feature basic"}, found.Details[0].Features)

	detail, err := repo.FindDetailByID(context.Background(), found.Details[1].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OfferTypeStandard, detail.OfferType)

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrOfferNotFound)
	_, err = repo.FindDetailByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrOfferDetailNotFound)
}

func TestOfferRepository_UpdateDetailAndSummary(t *testing.T) {
	db := testdb.New(t)
	repo := postgres.NewOfferRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, "shop", entity.RoleBusiness)
	offer := seedOffer(t, db, owner, "Logo design", "100", "200", "500")

	basic := offer.DetailByType(entity.OfferTypeBasic)
	basic.Price = decimal.RequireFromString("250.50")
	basic.Features = []string{"one", "two"}
	require.NoError(t, repo.UpdateDetail(ctx, basic))

	offer.Title = "Logo design v2"
	offer.RefreshSummary()
	require.NoError(t, repo.Update(ctx, offer))

	found, err := repo.FindByID(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Logo design v2", found.Title)
	assert.True(t, decimal.NewFromInt(200).Equal(found.MinPrice), found.MinPrice.String())
	assert.True(t, decimal.RequireFromString("250.5").Equal(found.DetailByType(entity.OfferTypeBasic).Price))
	assert.Equal(t, []string{"one", "two"}, found.DetailByType(entity.OfferTypeBasic).Features)
	assert.True(t, decimal.NewFromInt(500).Equal(found.DetailByType(entity.OfferTypePremium).Price))
}

func TestOfferRepository_Delete(t *testing.T) {
	db := testdb.New(t)
	repo := postgres.NewOfferRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, "shop", entity.RoleBusiness)
	offer := seedOffer(t, db, owner, "Logo design", "100", "200", "500")

	require.NoError(t, repo.Delete(ctx, offer.ID))

	_, err := repo.FindDetailByID(ctx, offer.Details[0].ID)
	assert.ErrorIs(t, err, repository.ErrOfferDetailNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, offer.ID), repository.ErrOfferNotFound)
}

func TestOfferRepository_List(t *testing.T) {
	db := testdb.New(t)
	repo := postgres.NewOfferRepository(db)
	ctx := context.Background()
	shopA := seedUser(t, db, "shop-a", entity.RoleBusiness)
	shopB := seedUser(t, db, "shop-b", entity.RoleBusiness)

	seedOffer(t, db, shopA, "Logo design", "100", "200", "300")
	seedOffer(t, db, shopA, "Web_site build", "50", "80", "90")
	seedOffer(t, db, shopB, "Copywriting", "20", "30", "40")

	tests := []struct {
		name       string
		filter     repository.OfferFilter
		wantTitles []string
		wantTotal  int64
	}{
		{
			name:       "creator",
			filter:     repository.OfferFilter{CreatorID: &shopB.ID},
			wantTitles: []string{"Copywriting"},
			wantTotal:  1,
		},
		{
			name:       "min price ascending",
			filter:     repository.OfferFilter{Ordering: repository.OfferOrderMinPrice},
			wantTitles: []string{"Copywriting", "Web_site build", "Logo design"},
			wantTotal:  3,
		},
		{
			name:       "min price floor",
			filter:     repository.OfferFilter{MinPrice: decimalPtr("50"), Ordering: repository.OfferOrderMinPriceDesc},
			wantTitles: []string{"Logo design", "Web_site build"},
			wantTotal:  2,
		},
		{
			name:       "search is case insensitive",
			filter:     repository.OfferFilter{Search: "LOGO"},
			wantTitles: []string{"Logo design"},
			wantTotal:  1,
		},
		{
			name:       "search treats underscore literally",
			filter:     repository.OfferFilter{Search: "_"},
			wantTitles: []string{"Web_site build"},
			wantTotal:  1,
		},
		{
			name:       "page",
			filter:     repository.OfferFilter{Ordering: repository.OfferOrderMinPrice, Offset: 1, Limit: 1},
			wantTitles: []string{"Web_site build"},
			wantTotal:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offers, total, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			titles := make([]string, 0, len(offers))
			for _, offer := range offers {
				titles = append(titles, offer.Title)
				assert.Len(t, offer.Details, 3)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}

	maxDelivery := 3
	offers, _, err := repo.List(ctx, repository.OfferFilter{MaxDeliveryTime: &maxDelivery})
	require.NoError(t, err)
	assert.Len(t, offers, 3)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)

	return &d
}
