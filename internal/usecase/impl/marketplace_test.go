package impl_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/cache"
	"bazaar/internal/infra/metrics"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/infra/persistence/testdb"
	"bazaar/internal/infra/qrcode"
	"bazaar/internal/infra/storage"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const testPassword = "Sup3r-secret"

// marketplace wires every usecase against a migrated SQLite database.
type marketplace struct {
	accounts usecase.AccountUsecase
	profiles usecase.ProfileUsecase
	offers   usecase.OfferUsecase
	orders   usecase.OrderUsecase
	reviews  usecase.ReviewUsecase
	stats    usecase.StatsUsecase
}

func newMarketplace(t *testing.T, configure ...func(*config.Config)) *marketplace {
	t.Helper()

	cfg := config.Defaults()
	cfg.SecretKey.Access = "marketplace_test_access_secret_key"
	cfg.Auth.BcryptCost = 4
	for _, fn := range configure {
		fn(cfg)
	}

	db := testdb.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := postgres.NewTransactionManager(db)
	userRepo := postgres.NewUserRepository(db)
	offerRepo := postgres.NewOfferRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	recorder := metrics.NewNoopRecorder()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		_ = bucket.Close()
	})
	media := storage.NewBlobStorage(bucket)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return &marketplace{
		accounts: impl.NewAccountService(impl.AccountServiceParams{
			TxManager:      txManager,
			UserRepo:       userRepo,
			Hasher:         auth.NewBcryptHasher(cfg),
			PasswordPolicy: auth.NewPasswordPolicy(cfg),
			TokenService:   tokens,
			Logger:         logger,
		}),
		profiles: impl.NewProfileService(impl.ProfileServiceParams{
			TxManager: txManager,
			UserRepo:  userRepo,
			Storage:   media,
			Config:    cfg,
			Logger:    logger,
		}),
		offers: impl.NewOfferService(impl.OfferServiceParams{
			TxManager:     txManager,
			OfferRepo:     offerRepo,
			Storage:       media,
			QRCodeService: qrcode.NewQRCodeService(cfg),
			Metrics:       recorder,
			Config:        cfg,
			Logger:        logger,
		}),
		orders: impl.NewOrderService(impl.OrderServiceParams{
			TxManager: txManager,
			OrderRepo: orderRepo,
			UserRepo:  userRepo,
			Metrics:   recorder,
			Config:    cfg,
			Logger:    logger,
		}),
		reviews: impl.NewReviewService(impl.ReviewServiceParams{
			TxManager:  txManager,
			ReviewRepo: reviewRepo,
			Metrics:    recorder,
			Logger:     logger,
		}),
		stats: impl.NewStatsService(impl.StatsServiceParams{
			UserRepo:   userRepo,
			OfferRepo:  offerRepo,
			ReviewRepo: reviewRepo,
			Cache:      cache.NewNoopStatsCache(),
			Logger:     logger,
		}),
	}
}

func (m *marketplace) register(t *testing.T, username string, role entity.Role) entity.Caller {
	t.Helper()

	out, err := m.accounts.Register(context.Background(), usecase.RegisterInput{
		Username:         username,
		Email:            username + "@example.com",
		Password:         testPassword,
		RepeatedPassword: testPassword,
		Role:             role,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	return out.User.Caller()
}

func (m *marketplace) publish(t *testing.T, owner entity.Caller) *entity.Offer {
	t.Helper()

	offer, err := m.offers.CreateOffer(context.Background(), owner, &usecase.CreateOfferInput{
		Title:       "Logo design",
		Description: "A logo for your brand",
		Details: []usecase.OfferDetailInput{
			{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: decimal.NewFromInt(100), Features: []string{"Logo"}, OfferType: entity.OfferTypeBasic},
			{Title: "Standard", Revisions: 3, DeliveryTimeInDays: 5, Price: decimal.NewFromInt(200), Features: []string{"Logo", "Card"}, OfferType: entity.OfferTypeStandard},
			{Title: "Premium", Revisions: -1, DeliveryTimeInDays: 3, Price: decimal.NewFromInt(300), Features: []string{"Logo", "Card", "Flyer"}, OfferType: entity.OfferTypePremium},
		},
	})
	require.NoError(t, err)

	return offer
}

func TestMarketplace_AccountFlow(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	caller := m.register(t, "mia", entity.RoleCustomer)

	out, err := m.accounts.Login(ctx, usecase.LoginInput{Username: "mia", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, caller.UserID, out.User.ID)
	assert.Equal(t, entity.RoleCustomer, out.User.Role())

	_, err = m.accounts.Login(ctx, usecase.LoginInput{Username: "mia", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = m.accounts.Register(ctx, usecase.RegisterInput{
		Username:         "mia",
		Email:            "MIA@example.com",
		Password:         testPassword,
		RepeatedPassword: testPassword,
		Role:             entity.RoleBusiness,
	})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields(), "username")
	assert.Contains(t, validationErr.Fields(), "email")

	location := "Hamburg"
	profile, err := m.profiles.UpdateProfile(ctx, caller, caller.UserID, &usecase.UpdateProfileInput{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "Hamburg", profile.Profile.Location)
	assert.Equal(t, entity.RoleCustomer, profile.Role())
}

func TestMarketplace_OfferTiers(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	owner := m.register(t, "studio", entity.RoleBusiness)

	_, err := m.offers.CreateOffer(ctx, owner, &usecase.CreateOfferInput{
		Title: "Incomplete",
		Details: []usecase.OfferDetailInput{
			{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: decimal.NewFromInt(100), Features: []string{"Logo"}, OfferType: entity.OfferTypeBasic},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	page, err := m.offers.ListOffers(ctx, &usecase.ListOffersInput{})
	require.NoError(t, err)
	assert.Zero(t, page.Count)

	offer := m.publish(t, owner)
	assert.True(t, offer.MinPrice.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 3, offer.MinDeliveryTime)

	premiumPrice := decimal.NewFromInt(50)
	premiumDays := 1
	out, err := m.offers.UpdateOffer(ctx, owner, offer.ID, &usecase.UpdateOfferInput{
		Details: []usecase.OfferDetailPatch{
			{OfferType: entity.OfferTypePremium, Price: &premiumPrice, DeliveryTimeInDays: &premiumDays},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.DetailResults, 1)
	assert.Equal(t, entity.DetailUpdated, out.DetailResults[0].Outcome)

	updated := out.Offer
	assert.True(t, updated.MinPrice.Equal(premiumPrice))
	assert.Equal(t, 1, updated.MinDeliveryTime)
	assert.True(t, updated.DetailByType(entity.OfferTypeBasic).Price.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Standard", updated.DetailByType(entity.OfferTypeStandard).Title)
	assert.Equal(t, []string{"Logo", "Card", "Flyer"}, updated.DetailByType(entity.OfferTypePremium).Features)

	stranger := m.register(t, "rival", entity.RoleBusiness)
	err = m.offers.DeleteOffer(ctx, stranger, offer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	page, err = m.offers.ListOffers(ctx, &usecase.ListOffersInput{CreatorID: &owner.UserID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Count)
}

func TestMarketplace_OrderSnapshotAndStatus(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	seller := m.register(t, "studio", entity.RoleBusiness)
	buyer := m.register(t, "mia", entity.RoleCustomer)
	offer := m.publish(t, seller)
	standard := offer.DetailByType(entity.OfferTypeStandard)

	_, err := m.orders.CreateOrder(ctx, seller, &usecase.CreateOrderInput{OfferDetailID: &standard.ID})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	order, err := m.orders.CreateOrder(ctx, buyer, &usecase.CreateOrderInput{OfferDetailID: &standard.ID})
	require.NoError(t, err)
	assert.Equal(t, seller.UserID, order.BusinessUserID)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)

	// Repricing the tier leaves the placed order untouched.
	repriced := decimal.NewFromInt(999)
	_, err = m.offers.UpdateOffer(ctx, seller, offer.ID, &usecase.UpdateOfferInput{
		Details: []usecase.OfferDetailPatch{{OfferType: entity.OfferTypeStandard, Price: &repriced}},
	})
	require.NoError(t, err)

	stored, err := m.orders.GetOrder(ctx, buyer, order.ID)
	require.NoError(t, err)
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(200)))

	completed := entity.OrderStatusCompleted
	_, err = m.orders.UpdateOrder(ctx, buyer, order.ID, &usecase.UpdateOrderInput{Status: &completed})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = m.orders.UpdateOrder(ctx, seller, order.ID, &usecase.UpdateOrderInput{Status: &completed})
	require.NoError(t, err)

	inProgress, err := m.orders.CountInProgress(ctx, seller.UserID)
	require.NoError(t, err)
	done, err := m.orders.CountCompleted(ctx, seller.UserID)
	require.NoError(t, err)
	assert.Zero(t, inProgress)
	assert.Equal(t, int64(1), done)

	reopen := entity.OrderStatusInProgress
	reopened, err := m.orders.UpdateOrder(ctx, seller, order.ID, &usecase.UpdateOrderInput{Status: &reopen})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, reopened.Status)

	_, err = m.orders.CountInProgress(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	orders, err := m.orders.ListOrders(ctx, seller)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestMarketplace_StrictTransitions(t *testing.T) {
	m := newMarketplace(t, func(cfg *config.Config) {
		cfg.Orders.StrictTransitions = true
	})
	ctx := context.Background()
	seller := m.register(t, "studio", entity.RoleBusiness)
	buyer := m.register(t, "mia", entity.RoleCustomer)
	basic := m.publish(t, seller).DetailByType(entity.OfferTypeBasic)

	order, err := m.orders.CreateOrder(ctx, buyer, &usecase.CreateOrderInput{OfferDetailID: &basic.ID})
	require.NoError(t, err)

	completed := entity.OrderStatusCompleted
	_, err = m.orders.UpdateOrder(ctx, seller, order.ID, &usecase.UpdateOrderInput{Status: &completed})
	require.NoError(t, err)

	reopen := entity.OrderStatusInProgress
	_, err = m.orders.UpdateOrder(ctx, seller, order.ID, &usecase.UpdateOrderInput{Status: &reopen})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	stored, err := m.orders.GetOrder(ctx, seller, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, stored.Status)
}

func TestMarketplace_ReviewsAndStats(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	first := m.register(t, "studio", entity.RoleBusiness)
	second := m.register(t, "atelier", entity.RoleBusiness)
	buyer := m.register(t, "mia", entity.RoleCustomer)
	m.publish(t, first)

	_, err := m.reviews.CreateReview(ctx, buyer, &usecase.CreateReviewInput{BusinessUserID: &first.UserID, Rating: 5})
	require.NoError(t, err)

	_, err = m.reviews.CreateReview(ctx, buyer, &usecase.CreateReviewInput{BusinessUserID: &first.UserID, Rating: 1})
	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)

	_, err = m.reviews.CreateReview(ctx, buyer, &usecase.CreateReviewInput{BusinessUserID: &second.UserID, Rating: 4})
	require.NoError(t, err)

	_, err = m.reviews.CreateReview(ctx, first, &usecase.CreateReviewInput{BusinessUserID: &second.UserID, Rating: 4})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	reviews, err := m.reviews.ListReviews(ctx, &usecase.ListReviewsInput{ReviewerID: &buyer.UserID, Ordering: "-rating"})
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)

	stats, err := m.stats.BaseInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ReviewCount)
	assert.InDelta(t, 4.5, stats.AverageRating, 0.001)
	assert.Equal(t, int64(2), stats.BusinessProfileCount)
	assert.Equal(t, int64(1), stats.OfferCount)
}
