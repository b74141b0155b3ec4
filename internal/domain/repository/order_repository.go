package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists order snapshots.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus writes the status and bumps updated_at.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	Delete(ctx context.Context, id uuid.UUID) error

	// ListByParticipant returns the orders where userID is the customer or the
	// business, newest first.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// CountByBusiness counts the orders of a business in the given status.
	CountByBusiness(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}
