package handler

import (
	"net/http"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: discardLogger()}), orderUC
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	caller := customerCaller()
	detailID := uuid.New()
	order := &entity.Order{
		ID:             uuid.New(),
		CustomerUserID: caller.UserID,
		BusinessUserID: uuid.New(),
		Title:          "Logo design",
		Price:          decimal.NewFromInt(200),
		OfferType:      entity.OfferTypeStandard,
		Status:         entity.OrderStatusInProgress,
	}
	orderUC.EXPECT().CreateOrder(mock.Anything, *caller, &usecase.CreateOrderInput{OfferDetailID: &detailID}).
		Return(order, nil).
		Once()

	c, rec := newTestContext(http.MethodPost, "/api/orders/", `{"offer_detail_id":"`+detailID.String()+`"}`, caller)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got orderResponse
	decodeData(t, rec, &got)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.BusinessUserID, got.BusinessUser)
	assert.Equal(t, entity.OrderStatusInProgress, got.Status)
	assert.True(t, decimal.NewFromInt(200).Equal(got.Price))
}

func TestOrderHandler_CreateOrder_Forbidden(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	caller := businessCaller()
	orderUC.EXPECT().CreateOrder(mock.Anything, *caller, mock.Anything).Return(nil, domainerrors.ErrForbidden).Once()

	c, rec := newTestContext(http.MethodPost, "/api/orders/", `{"offer_detail_id":"`+uuid.NewString()+`"}`, caller)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestOrderHandler_CreateOrder_Unauthenticated(t *testing.T) {
	h, _ := newTestOrderHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/orders/", `{}`, nil)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("status only", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		caller := businessCaller()
		completed := entity.OrderStatusCompleted
		orderUC.EXPECT().UpdateOrder(mock.Anything, *caller, orderID, &usecase.UpdateOrderInput{Status: &completed}).
			Return(&entity.Order{ID: orderID, Status: completed}, nil).
			Once()

		c, rec := newTestContext(http.MethodPatch, "/api/orders/"+orderID.String()+"/", `{"status":"completed"}`, caller)
		withParam(c, "id", orderID.String())

		require.NoError(t, h.UpdateOrder(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got orderResponse
		decodeData(t, rec, &got)
		assert.Equal(t, entity.OrderStatusCompleted, got.Status)
	})

	t.Run("other fields are forwarded for rejection", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		caller := businessCaller()
		orderUC.EXPECT().UpdateOrder(mock.Anything, *caller, orderID, mock.MatchedBy(func(in *usecase.UpdateOrderInput) bool {
			return in.Status == nil && assert.ObjectsAreEqual([]string{"price", "title"}, in.OtherFields)
		})).Return(nil, domainerrors.NewFieldError("non_field_errors", "Only the status can be changed.")).Once()

		c, rec := newTestContext(http.MethodPatch, "/api/orders/"+orderID.String()+"/", `{"title":"x","price":"1"}`, caller)
		withParam(c, "id", orderID.String())

		require.NoError(t, h.UpdateOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"Only the status can be changed."}, decode(t, rec).Error.Details["non_field_errors"])
	})

	t.Run("status must be a string", func(t *testing.T) {
		h, _ := newTestOrderHandler(t)
		c, rec := newTestContext(http.MethodPatch, "/api/orders/"+orderID.String()+"/", `{"status":5}`, businessCaller())
		withParam(c, "id", orderID.String())

		require.NoError(t, h.UpdateOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "status")
	})

	t.Run("customer is refused before the body is read", func(t *testing.T) {
		for _, body := range []string{`{"status":5}`, `{"status":`} {
			h, _ := newTestOrderHandler(t)
			c, rec := newTestContext(http.MethodPatch, "/api/orders/"+orderID.String()+"/", body, customerCaller())
			withParam(c, "id", orderID.String())

			require.NoError(t, h.UpdateOrder(c))
			assert.Equal(t, http.StatusForbidden, rec.Code, body)
			env := decode(t, rec)
			assert.Equal(t, "FORBIDDEN", env.Error.Code)
			assert.Nil(t, env.Error.Details)
		}
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		h, _ := newTestOrderHandler(t)
		c, rec := newTestContext(http.MethodPatch, "/api/orders/abc/", `{"status":"completed"}`, businessCaller())
		withParam(c, "id", "abc")

		require.NoError(t, h.UpdateOrder(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	caller := &entity.Caller{UserID: uuid.New(), Role: entity.RoleCustomer, IsStaff: true}
	orderID := uuid.New()
	orderUC.EXPECT().DeleteOrder(mock.Anything, *caller, orderID).Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/api/orders/"+orderID.String()+"/", "", caller)
	withParam(c, "id", orderID.String())

	require.NoError(t, h.DeleteOrder(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOrderHandler_Counts(t *testing.T) {
	businessID := uuid.New()

	t.Run("in progress", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().CountInProgress(mock.Anything, businessID).Return(int64(0), nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/order-count/"+businessID.String()+"/", "", nil)
		withParam(c, "business_user_id", businessID.String())

		require.NoError(t, h.OrderCount(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got map[string]int64
		decodeData(t, rec, &got)
		assert.Equal(t, map[string]int64{"order_count": 0}, got)
	})

	t.Run("completed", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().CountCompleted(mock.Anything, businessID).Return(int64(3), nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/completed-order-count/"+businessID.String()+"/", "", nil)
		withParam(c, "business_user_id", businessID.String())

		require.NoError(t, h.CompletedOrderCount(c))

		var got map[string]int64
		decodeData(t, rec, &got)
		assert.Equal(t, map[string]int64{"completed_order_count": 3}, got)
	})

	t.Run("unknown account", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().CountInProgress(mock.Anything, businessID).Return(int64(0), domainerrors.ErrUserNotFound).Once()

		c, rec := newTestContext(http.MethodGet, "/api/order-count/"+businessID.String()+"/", "", nil)
		withParam(c, "business_user_id", businessID.String())

		require.NoError(t, h.OrderCount(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
