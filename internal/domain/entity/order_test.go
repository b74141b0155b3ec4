package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo_Permissive(t *testing.T) {
	for _, from := range OrderStatuses() {
		for _, to := range OrderStatuses() {
			assert.True(t, from.CanTransitionTo(to, false), "%s -> %s", from, to)
		}
	}

	assert.False(t, OrderStatusInProgress.CanTransitionTo(OrderStatus("shipped"), false))
}

func TestOrderStatus_CanTransitionTo_Strict(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusInProgress, OrderStatusCompleted, true},
		{OrderStatusInProgress, OrderStatusCancelled, true},
		{OrderStatusInProgress, OrderStatusInProgress, true},
		{OrderStatusCompleted, OrderStatusInProgress, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
		{OrderStatusCancelled, OrderStatusCancelled, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to, true), "%s -> %s", tt.from, tt.to)
	}
}

func TestNewOrderFromDetail_Snapshot(t *testing.T) {
	businessID := uuid.New()
	customerID := uuid.New()
	offer := &Offer{ID: uuid.New(), UserID: businessID, Title: "Website"}
	detail := &OfferDetail{
		ID:                 uuid.New(),
		Title:              "Standard",
		Revisions:          3,
		DeliveryTimeInDays: 7,
		Price:              decimal.NewFromInt(200),
		Features:           []string{"Landing page", "Contact form"},
		OfferType:          OfferTypeStandard,
	}

	order := NewOrderFromDetail(customerID, offer, detail)

	assert.Equal(t, customerID, order.CustomerUserID)
	assert.Equal(t, businessID, order.BusinessUserID)
	assert.Equal(t, "Website", order.Title)
	assert.Equal(t, OrderStatusInProgress, order.Status)
	assert.Equal(t, OfferTypeStandard, order.OfferType)

	detail.Price = decimal.NewFromInt(999)
	detail.Features[0] = "changed"

	assert.True(t, order.Price.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "Landing page", order.Features[0])
	assert.True(t, order.IsParticipant(customerID))
	assert.True(t, order.IsParticipant(businessID))
	assert.False(t, order.IsParticipant(uuid.New()))
}
