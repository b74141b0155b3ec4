package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler serves offers and their tiers.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// OfferDetailRequest is one tier of a new offer
type OfferDetailRequest struct {
	Title              string          `json:"title" validate:"required"`
	Revisions          int             `json:"revisions" validate:"min=-1"`
	DeliveryTimeInDays int             `json:"delivery_time_in_days" validate:"gt=0"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features" validate:"required,min=1"`
	OfferType          string          `json:"offer_type" validate:"required"`
}

// CreateOfferRequest represents the request body for publishing an offer
type CreateOfferRequest struct {
	Title       string               `json:"title" validate:"required"`
	Image       string               `json:"image"`
	Description string               `json:"description"`
	Details     []OfferDetailRequest `json:"details" validate:"required,dive"`
}

// OfferDetailPatchRequest addresses one existing tier by offer_type
type OfferDetailPatchRequest struct {
	OfferType          string           `json:"offer_type"`
	Title              *string          `json:"title"`
	Revisions          *int             `json:"revisions"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days"`
	Price              *decimal.Decimal `json:"price"`
	Features           []string         `json:"features"`
}

// UpdateOfferRequest represents a partial offer update
type UpdateOfferRequest struct {
	Title       *string                   `json:"title"`
	Image       *string                   `json:"image"`
	Description *string                   `json:"description"`
	Details     []OfferDetailPatchRequest `json:"details"`
}

// ResolveCodeRequest carries the payload scanned from an offer QR code
type ResolveCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// ListOffers returns one page of offers matching the query filters
func (h *OfferHandler) ListOffers(c echo.Context) error {
	input, err := listOffersInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.offerUC.ListOffers(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := offerPageResponse{
		Count:    page.Count,
		Page:     page.Page,
		PageSize: page.PageSize,
		Results:  toOfferResponses(page.Results),
	}
	if int64(page.Page*page.PageSize) < page.Count {
		resp.Next = pageLink(c, page.Page+1)
	}
	if page.Page > 1 {
		resp.Previous = pageLink(c, page.Page-1)
	}

	return response.Success(c, http.StatusOK, resp)
}

func listOffersInput(c echo.Context) (*usecase.ListOffersInput, error) {
	input := &usecase.ListOffersInput{
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	}

	creatorID, err := queryID(c, "creator_id")
	if err != nil {
		return nil, err
	}
	input.CreatorID = creatorID

	if raw := c.QueryParam("min_price"); raw != "" {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, domainerrors.NewFieldError("min_price", "A valid number is required.")
		}
		input.MinPrice = &minPrice
	}

	if input.MaxDeliveryTime, err = queryInt(c, "max_delivery_time"); err != nil {
		return nil, err
	}

	page, err := queryInt(c, "page")
	if err != nil {
		return nil, err
	}
	if page != nil {
		input.Page = *page
	}

	pageSize, err := queryInt(c, "page_size")
	if err != nil {
		return nil, err
	}
	if pageSize != nil {
		input.PageSize = *pageSize
	}

	return input, nil
}

// pageLink rewrites the request URL to point at another page.
func pageLink(c echo.Context, page int) *string {
	u := url.URL{Path: c.Request().URL.Path}
	query := c.QueryParams()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()
	link := u.String()

	return &link
}

// CreateOffer publishes an offer with its three tiers
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}
	if !caller.CanPublishOffers() {
		return forbidden(c, "only business accounts can publish offers")
	}

	var req CreateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateOfferInput{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Details:     make([]usecase.OfferDetailInput, 0, len(req.Details)),
	}
	for _, detail := range req.Details {
		input.Details = append(input.Details, usecase.OfferDetailInput{
			Title:              detail.Title,
			Revisions:          detail.Revisions,
			DeliveryTimeInDays: detail.DeliveryTimeInDays,
			Price:              detail.Price,
			Features:           detail.Features,
			OfferType:          entity.OfferType(detail.OfferType),
		})
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), caller, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOfferResponse(offer))
}

// GetOffer returns one offer with its tiers
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer))
}

// UpdateOffer applies a partial update, reporting one result per tier entry
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	offerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid offer input")
	}

	input := &usecase.UpdateOfferInput{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Details:     make([]usecase.OfferDetailPatch, 0, len(req.Details)),
	}
	for _, patch := range req.Details {
		input.Details = append(input.Details, usecase.OfferDetailPatch{
			OfferType:          entity.OfferType(patch.OfferType),
			Title:              patch.Title,
			Revisions:          patch.Revisions,
			DeliveryTimeInDays: patch.DeliveryTimeInDays,
			Price:              patch.Price,
			Features:           patch.Features,
		})
	}

	out, err := h.offerUC.UpdateOffer(c.Request().Context(), caller, offerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updateOfferResponse{
		offerResponse: toOfferResponse(out.Offer),
		DetailResults: out.DetailResults,
	})
}

// DeleteOffer removes an offer owned by the caller
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	offerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.offerUC.DeleteOffer(c.Request().Context(), caller, offerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// UploadImage replaces the offer image from the multipart "image" field
func (h *OfferHandler) UploadImage(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	offerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeUpload()

	offer, err := h.offerUC.UploadOfferImage(c.Request().Context(), caller, offerID, upload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer))
}

// GetOfferDetail returns a single tier
func (h *OfferHandler) GetOfferDetail(c echo.Context) error {
	detailID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.offerUC.GetOfferDetail(c.Request().Context(), detailID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferDetailResponse(detail))
}

// QRCode renders the share code of an offer as PNG
func (h *OfferHandler) QRCode(c echo.Context) error {
	offerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.offerUC.OfferQRCode(c.Request().Context(), offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveCode returns the offer a scanned share code points at
func (h *OfferHandler) ResolveCode(c echo.Context) error {
	var req ResolveCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid code input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.ResolveOfferCode(c.Request().Context(), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer))
}
