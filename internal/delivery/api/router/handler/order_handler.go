package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves orders and the per-business order counters.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest names the offer tier being purchased
type CreateOrderRequest struct {
	OfferDetailID *uuid.UUID `json:"offer_detail_id"`
}

// ListOrders returns the orders the caller takes part in
func (h *OrderHandler) ListOrders(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders))
}

// CreateOrder snapshots an offer tier into a new order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.FieldError(c, "offer_detail_id", "Must be a valid UUID.")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), caller, &usecase.CreateOrderInput{
		OfferDetailID: req.OfferDetailID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}

// GetOrder returns one order the caller takes part in
func (h *OrderHandler) GetOrder(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), caller, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// UpdateOrder writes the order status. Any other body field is rejected.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}
	if !caller.CanChangeOrderStatus() {
		return forbidden(c, "only business accounts can update orders")
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var body map[string]json.RawMessage
	if err := (&echo.DefaultBinder{}).BindBody(c, &body); err != nil {
		return response.BindingError(c, "Invalid order input")
	}

	input := &usecase.UpdateOrderInput{}
	for field, raw := range body {
		if field != "status" {
			input.OtherFields = append(input.OtherFields, field)

			continue
		}

		var status entity.OrderStatus
		if err := json.Unmarshal(raw, &status); err != nil {
			return response.FieldError(c, "status", "Not a valid string.")
		}
		input.Status = &status
	}
	slices.Sort(input.OtherFields)

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), caller, orderID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// DeleteOrder removes an order
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), caller, orderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// OrderCount returns the number of in-progress orders of a business
func (h *OrderHandler) OrderCount(c echo.Context) error {
	businessID, err := pathID(c, "business_user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.orderUC.CountInProgress(c.Request().Context(), businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"order_count": count})
}

// CompletedOrderCount returns the number of completed orders of a business
func (h *OrderHandler) CompletedOrderCount(c echo.Context) error {
	businessID, err := pathID(c, "business_user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.orderUC.CountCompleted(c.Request().Context(), businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"completed_order_count": count})
}
