package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the order workflow.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, caller entity.Caller, input *CreateOrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, caller entity.Caller, orderID uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)
	DeleteOrder(ctx context.Context, caller entity.Caller, orderID uuid.UUID) error
	GetOrder(ctx context.Context, caller entity.Caller, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, caller entity.Caller) ([]*entity.Order, error)
	CountInProgress(ctx context.Context, businessUserID uuid.UUID) (int64, error)
	CountCompleted(ctx context.Context, businessUserID uuid.UUID) (int64, error)
}

// CreateOrderInput names the tier being purchased.
type CreateOrderInput struct {
	OfferDetailID *uuid.UUID
}

// UpdateOrderInput is a status write. OtherFields lists any other request
// fields, which are rejected.
type UpdateOrderInput struct {
	Status      *entity.OrderStatus
	OtherFields []string
}
