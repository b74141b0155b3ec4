package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx lets txManager run exactly one transaction against a factory
// prepared by setup. The callback's error is returned unchanged.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func customer() entity.Caller {
	return entity.Caller{UserID: uuid.New(), Role: entity.RoleCustomer}
}

func business() entity.Caller {
	return entity.Caller{UserID: uuid.New(), Role: entity.RoleBusiness}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fieldErrors unwraps a validation failure into its field map.
func fieldErrors(t *testing.T, err error) domainerrors.FieldErrors {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)

	return validationErr.Fields()
}

// fullOffer builds a persisted-looking offer with all three tiers.
func fullOffer(ownerID uuid.UUID) *entity.Offer {
	offer := &entity.Offer{
		ID:     uuid.New(),
		UserID: ownerID,
		Title:  "Logo design",
	}
	for i, offerType := range entity.OfferTypes() {
		offer.Details = append(offer.Details, &entity.OfferDetail{
			ID:                 uuid.New(),
			OfferID:            offer.ID,
			Title:              "Logo " + offerType.String(),
			Revisions:          i + 1,
			DeliveryTimeInDays: 7 - i*2,
			Price:              decimal.NewFromInt(int64(100 * (i + 1))),
			Features:           []string{"feature"},
			OfferType:          offerType,
		})
	}
	offer.RefreshSummary()

	return offer
}
