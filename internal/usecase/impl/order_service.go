package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager                  repository.TransactionManager
	orderRepo                  repository.OrderRepository
	userRepo                   repository.UserRepository
	metrics                    service.MetricsRecorder
	strictTransitions          bool
	restrictToAssignedBusiness bool
	logger                     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:                  params.TxManager,
		orderRepo:                  params.OrderRepo,
		userRepo:                   params.UserRepo,
		metrics:                    params.Metrics,
		restrictToAssignedBusiness: true,
		logger:                     params.Logger,
	}
	if params.Config != nil {
		srv.strictTransitions = params.Config.Orders.StrictTransitions
		srv.restrictToAssignedBusiness = params.Config.Orders.RestrictToAssignedBusiness
	}

	return srv
}

// CreateOrder snapshots the chosen tier into a new in-progress order.
func (srv *orderService) CreateOrder(ctx context.Context, caller entity.Caller, input *usecase.CreateOrderInput) (*entity.Order, error) {
	// 1. Only customers buy
	if !caller.CanPlaceOrders() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only customers can place orders")
	}
	if input.OfferDetailID == nil {
		return nil, domainerrors.NewFieldError("offer_detail_id", "This field is required.")
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		// 2. Resolve the tier and its offer
		detail, err := offerRepo.FindDetailByID(ctx, *input.OfferDetailID)
		if err != nil {
			return translateRepoError(err, "failed to find offer detail")
		}
		offer, err := offerRepo.FindByID(ctx, detail.OfferID)
		if err != nil {
			return translateRepoError(err, "failed to find offer")
		}

		// 3. Snapshot and persist
		order = entity.NewOrderFromDetail(caller.UserID, offer, detail)

		return translateRepoError(repoFactory.OrderRepo().Create(ctx, order), "failed to create order")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.metrics.OrderPlaced(order.OfferType)
	loggerFrom(ctx, srv.logger).Info("Order placed", "orderID", order.ID, "customerID", caller.UserID, "businessID", order.BusinessUserID)

	return order, nil
}

// UpdateOrder changes the status of an order. Status is the only writable field.
func (srv *orderService) UpdateOrder(
	ctx context.Context,
	caller entity.Caller,
	orderID uuid.UUID,
	input *usecase.UpdateOrderInput,
) (*entity.Order, error) {
	// 1. Role gate, then the shape of the request
	if !caller.CanChangeOrderStatus() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only business accounts can update orders")
	}
	if err := validateOrderUpdate(input); err != nil {
		return nil, err
	}
	next := *input.Status

	var (
		updated  *entity.Order
		previous entity.OrderStatus
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		// 2. Load and check ownership
		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return translateRepoError(err, "failed to find order")
		}
		if srv.restrictToAssignedBusiness && !caller.Is(order.BusinessUserID) {
			return errors.Wrap(domainerrors.ErrForbidden, "order belongs to another business")
		}

		// 3. Check the transition
		previous = order.Status
		if !order.Status.CanTransitionTo(next, srv.strictTransitions) {
			return domainerrors.NewFieldError("status",
				fmt.Sprintf("Cannot change status from %s to %s.", order.Status, next))
		}
		if previous == next {
			updated = order

			return nil
		}

		// 4. Write and reload
		if err := orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
			return translateRepoError(err, "failed to update order status")
		}
		updated, err = orderRepo.FindByID(ctx, orderID)

		return translateRepoError(err, "failed to reload order")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	if previous != next {
		srv.metrics.OrderStatusChanged(previous, next)
		loggerFrom(ctx, srv.logger).Info("Order status changed", "orderID", orderID, "from", previous, "to", next)
	}

	return updated, nil
}

func validateOrderUpdate(input *usecase.UpdateOrderInput) error {
	errs := domainerrors.FieldErrors{}
	for _, field := range input.OtherFields {
		errs.Add(field, "Only status may be updated.")
	}

	switch {
	case input.Status == nil:
		errs.Add("status", "This field is required.")
	case !input.Status.IsValid():
		errs.Add("status", fmt.Sprintf("%q is not a valid choice.", *input.Status))
	}

	return errs.AsError()
}

// DeleteOrder removes an order. Only the customer who placed it, or staff, may delete it.
func (srv *orderService) DeleteOrder(ctx context.Context, caller entity.Caller, orderID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return translateRepoError(err, "failed to find order")
		}
		if !caller.CanModify(order.CustomerUserID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the customer or staff can delete an order")
		}

		return translateRepoError(orderRepo.Delete(ctx, orderID), "failed to delete order")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	loggerFrom(ctx, srv.logger).Info("Order deleted", "orderID", orderID, "userID", caller.UserID)

	return nil
}

// GetOrder returns an order to one of its participants or to staff.
func (srv *orderService) GetOrder(ctx context.Context, caller entity.Caller, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get order")
	}
	if !caller.IsStaff && !order.IsParticipant(caller.UserID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a participant of this order")
	}

	return order, nil
}

// ListOrders returns the orders the caller placed or fulfils, newest first.
func (srv *orderService) ListOrders(ctx context.Context, caller entity.Caller) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByParticipant(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CountInProgress counts the open orders of a business.
func (srv *orderService) CountInProgress(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	return srv.countByStatus(ctx, businessUserID, entity.OrderStatusInProgress)
}

// CountCompleted counts the delivered orders of a business.
func (srv *orderService) CountCompleted(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	return srv.countByStatus(ctx, businessUserID, entity.OrderStatusCompleted)
}

func (srv *orderService) countByStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
	if _, err := srv.userRepo.FindByID(ctx, businessUserID); err != nil {
		return 0, translateRepoError(err, "failed to find business account")
	}

	count, err := srv.orderRepo.CountByBusiness(ctx, businessUserID, status)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}
