package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves business reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for reviewing a business
type CreateReviewRequest struct {
	BusinessUser *uuid.UUID `json:"business_user"`
	Rating       int        `json:"rating"`
	Description  string     `json:"description"`
}

// UpdateReviewRequest represents a partial review update
type UpdateReviewRequest struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

// ListReviews returns the reviews matching the query filters
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	businessID, err := queryID(c, "business_user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	reviewerID, err := queryID(c, "reviewer_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), &usecase.ListReviewsInput{
		BusinessUserID: businessID,
		ReviewerID:     reviewerID,
		Ordering:       c.QueryParam("ordering"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponses(reviews))
}

// CreateReview records the caller's review of a business
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), caller, &usecase.CreateReviewInput{
		BusinessUserID: req.BusinessUser,
		Rating:         req.Rating,
		Description:    req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review))
}

// GetReview returns one review
func (h *ReviewHandler) GetReview(c echo.Context) error {
	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}

// UpdateReview edits the caller's review
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), caller, reviewID, &usecase.UpdateReviewInput{
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}

// DeleteReview removes the caller's review
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), caller, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
