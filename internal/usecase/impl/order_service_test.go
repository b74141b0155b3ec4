package impl

import (
	"context"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	offerRepo *mockRepo.MockOfferRepository
	userRepo  *mockRepo.MockUserRepository
	metrics   *mockSvc.MockMetricsRecorder
}

func createTestOrderService(t *testing.T, configure ...func(*config.Config)) orderServiceFixtures {
	cfg := config.Defaults()
	for _, fn := range configure {
		fn(cfg)
	}

	fx := orderServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		offerRepo: mockRepo.NewMockOfferRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		metrics:   mockSvc.NewMockMetricsRecorder(t),
	}
	fx.service = NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		UserRepo:  fx.userRepo,
		Metrics:   fx.metrics,
		Config:    cfg,
		Logger:    discardLogger(),
	})

	return fx
}

func statusPtr(status entity.OrderStatus) *entity.OrderStatus {
	return &status
}

func placedOrder(customerID, businessID uuid.UUID, status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:                 uuid.New(),
		CustomerUserID:     customerID,
		BusinessUserID:     businessID,
		Title:              "Logo design",
		Revisions:          2,
		DeliveryTimeInDays: 5,
		Price:              price("200"),
		Features:           []string{"feature"},
		OfferType:          entity.OfferTypeStandard,
		Status:             status,
	}
}

func TestOrderService_CreateOrder_SnapshotsTier(t *testing.T) {
	fx := createTestOrderService(t)
	caller := customer()
	offer := fullOffer(uuid.New())
	detail := offer.DetailByType(entity.OfferTypeStandard)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OfferRepo().Return(fx.offerRepo)
		factory.EXPECT().OrderRepo().Return(fx.orderRepo)
		fx.offerRepo.EXPECT().FindDetailByID(mock.Anything, detail.ID).Return(detail, nil).Once()
		fx.offerRepo.EXPECT().FindByID(mock.Anything, offer.ID).Return(offer, nil).Once()
		fx.orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	})
	fx.metrics.EXPECT().OrderPlaced(entity.OfferTypeStandard).Return().Once()

	order, err := fx.service.CreateOrder(context.Background(), caller, &usecase.CreateOrderInput{OfferDetailID: &detail.ID})

	require.NoError(t, err)
	assert.Equal(t, caller.UserID, order.CustomerUserID)
	assert.Equal(t, offer.UserID, order.BusinessUserID)
	assert.Equal(t, offer.Title, order.Title)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)
	assert.True(t, detail.Price.Equal(order.Price))
	assert.Equal(t, detail.Features, order.Features)
}

func TestOrderService_CreateOrder_BusinessForbidden(t *testing.T) {
	fx := createTestOrderService(t)
	detailID := uuid.New()

	_, err := fx.service.CreateOrder(context.Background(), business(), &usecase.CreateOrderInput{OfferDetailID: &detailID})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_CreateOrder_MissingDetailID(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrder(context.Background(), customer(), &usecase.CreateOrderInput{})

	assert.Contains(t, fieldErrors(t, err), "offer_detail_id")
}

func TestOrderService_CreateOrder_UnknownDetail(t *testing.T) {
	fx := createTestOrderService(t)
	detailID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OfferRepo().Return(fx.offerRepo)
		fx.offerRepo.EXPECT().FindDetailByID(mock.Anything, detailID).Return(nil, repository.ErrOfferDetailNotFound).Once()
	})

	_, err := fx.service.CreateOrder(context.Background(), customer(), &usecase.CreateOrderInput{OfferDetailID: &detailID})

	assert.ErrorIs(t, err, domainerrors.ErrOfferDetailNotFound)
}

func TestOrderService_UpdateOrder_CustomerForbiddenBeforeValidation(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrder(context.Background(), customer(), uuid.New(), &usecase.UpdateOrderInput{
		OtherFields: []string{"price"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateOrder_RejectsInput(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.UpdateOrderInput
		wantField string
	}{
		{name: "other fields", input: usecase.UpdateOrderInput{Status: statusPtr(entity.OrderStatusCompleted), OtherFields: []string{"price"}}, wantField: "price"},
		{name: "missing status", input: usecase.UpdateOrderInput{}, wantField: "status"},
		{name: "unknown status", input: usecase.UpdateOrderInput{Status: statusPtr("shipped")}, wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.UpdateOrder(context.Background(), business(), uuid.New(), &tt.input)

			assert.Contains(t, fieldErrors(t, err), tt.wantField)
		})
	}
}

func TestOrderService_UpdateOrder_ReopenAllowedByDefault(t *testing.T) {
	fx := createTestOrderService(t)
	caller := business()
	order := placedOrder(uuid.New(), caller.UserID, entity.OrderStatusCompleted)
	reopened := *order
	reopened.Status = entity.OrderStatusInProgress

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OrderRepo().Return(fx.orderRepo)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
		fx.orderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID, entity.OrderStatusInProgress).Return(nil).Once()
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(&reopened, nil).Once()
	})
	fx.metrics.EXPECT().OrderStatusChanged(entity.OrderStatusCompleted, entity.OrderStatusInProgress).Return().Once()

	updated, err := fx.service.UpdateOrder(context.Background(), caller, order.ID, &usecase.UpdateOrderInput{
		Status: statusPtr(entity.OrderStatusInProgress),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, updated.Status)
}

func TestOrderService_UpdateOrder_StrictRejectsReopen(t *testing.T) {
	fx := createTestOrderService(t, func(cfg *config.Config) {
		cfg.Orders.StrictTransitions = true
	})
	caller := business()
	order := placedOrder(uuid.New(), caller.UserID, entity.OrderStatusCompleted)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OrderRepo().Return(fx.orderRepo)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
	})

	_, err := fx.service.UpdateOrder(context.Background(), caller, order.ID, &usecase.UpdateOrderInput{
		Status: statusPtr(entity.OrderStatusInProgress),
	})

	assert.Equal(t, []string{"Cannot change status from completed to in_progress."}, fieldErrors(t, err)["status"])
}

func TestOrderService_UpdateOrder_SameStatusIsNoop(t *testing.T) {
	fx := createTestOrderService(t, func(cfg *config.Config) {
		cfg.Orders.StrictTransitions = true
	})
	caller := business()
	order := placedOrder(uuid.New(), caller.UserID, entity.OrderStatusCancelled)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().OrderRepo().Return(fx.orderRepo)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
	})

	updated, err := fx.service.UpdateOrder(context.Background(), caller, order.ID, &usecase.UpdateOrderInput{
		Status: statusPtr(entity.OrderStatusCancelled),
	})

	require.NoError(t, err)
	assert.Same(t, order, updated)
}

func TestOrderService_UpdateOrder_AssignedBusinessPolicy(t *testing.T) {
	t.Run("restricted by default", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := placedOrder(uuid.New(), uuid.New(), entity.OrderStatusInProgress)

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().OrderRepo().Return(fx.orderRepo)
			fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
		})

		_, err := fx.service.UpdateOrder(context.Background(), business(), order.ID, &usecase.UpdateOrderInput{
			Status: statusPtr(entity.OrderStatusCompleted),
		})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("any business when relaxed", func(t *testing.T) {
		fx := createTestOrderService(t, func(cfg *config.Config) {
			cfg.Orders.RestrictToAssignedBusiness = false
		})
		order := placedOrder(uuid.New(), uuid.New(), entity.OrderStatusInProgress)

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().OrderRepo().Return(fx.orderRepo)
			fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Twice()
			fx.orderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID, entity.OrderStatusCompleted).Return(nil).Once()
		})
		fx.metrics.EXPECT().OrderStatusChanged(entity.OrderStatusInProgress, entity.OrderStatusCompleted).Return().Once()

		_, err := fx.service.UpdateOrder(context.Background(), business(), order.ID, &usecase.UpdateOrderInput{
			Status: statusPtr(entity.OrderStatusCompleted),
		})

		assert.NoError(t, err)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name    string
		caller  entity.Caller
		wantErr error
	}{
		{name: "customer", caller: entity.Caller{UserID: customerID, Role: entity.RoleCustomer}},
		{name: "staff", caller: entity.Caller{UserID: uuid.New(), Role: entity.RoleBusiness, IsStaff: true}},
		{name: "business", caller: business(), wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			order := placedOrder(customerID, uuid.New(), entity.OrderStatusInProgress)

			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				factory.EXPECT().OrderRepo().Return(fx.orderRepo)
				fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
				if tt.wantErr == nil {
					fx.orderRepo.EXPECT().Delete(mock.Anything, order.ID).Return(nil).Once()
				}
			})

			err := fx.service.DeleteOrder(context.Background(), tt.caller, order.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetOrder_NonParticipantForbidden(t *testing.T) {
	fx := createTestOrderService(t)
	order := placedOrder(uuid.New(), uuid.New(), entity.OrderStatusInProgress)
	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()

	_, err := fx.service.GetOrder(context.Background(), customer(), order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Counts(t *testing.T) {
	fx := createTestOrderService(t)
	businessID := uuid.New()
	fx.userRepo.EXPECT().FindByID(mock.Anything, businessID).Return(&entity.User{ID: businessID}, nil).Twice()
	fx.orderRepo.EXPECT().CountByBusiness(mock.Anything, businessID, entity.OrderStatusInProgress).Return(0, nil).Once()
	fx.orderRepo.EXPECT().CountByBusiness(mock.Anything, businessID, entity.OrderStatusCompleted).Return(4, nil).Once()

	inProgress, err := fx.service.CountInProgress(context.Background(), businessID)
	require.NoError(t, err)
	completed, err := fx.service.CountCompleted(context.Background(), businessID)
	require.NoError(t, err)

	assert.Zero(t, inProgress)
	assert.Equal(t, int64(4), completed)
}

func TestOrderService_Counts_UnknownAccount(t *testing.T) {
	fx := createTestOrderService(t)
	accountID := uuid.New()
	fx.userRepo.EXPECT().FindByID(mock.Anything, accountID).Return(nil, repository.ErrUserNotFound).Once()

	_, err := fx.service.CountInProgress(context.Background(), accountID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
