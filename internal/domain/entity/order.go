package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status an order may hold.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled}
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	return slices.Contains(OrderStatuses(), s)
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the strict graph allows no move out of s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether an order in s may be set to next.
// Without strict mode the graph is flat: every valid status is reachable from
// every status. In strict mode only in_progress may move, and only forward.
// Writing the current status is always allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus, strict bool) bool {
	if !next.IsValid() {
		return false
	}
	if !strict || s == next {
		return true
	}

	return s == OrderStatusInProgress && next.IsTerminal()
}

// Order is a customer's purchase of one offer tier. Its tier fields are a copy
// taken when the order was placed and never follow later offer edits.
type Order struct {
	ID                 uuid.UUID
	CustomerUserID     uuid.UUID
	BusinessUserID     uuid.UUID
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string
	OfferType          OfferType
	Status             OrderStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewOrderFromDetail snapshots the given tier of offer into a new in-progress
// order placed by customerID.
func NewOrderFromDetail(customerID uuid.UUID, offer *Offer, detail *OfferDetail) *Order {
	return &Order{
		CustomerUserID:     customerID,
		BusinessUserID:     offer.UserID,
		Title:              offer.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           slices.Clone(detail.Features),
		OfferType:          detail.OfferType,
		Status:             OrderStatusInProgress,
	}
}

// IsParticipant reports whether userID is the customer or the business of the order.
func (o *Order) IsParticipant(userID uuid.UUID) bool {
	return o.CustomerUserID == userID || o.BusinessUserID == userID
}
