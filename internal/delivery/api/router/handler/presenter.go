package handler

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Response DTOs ---

type authResponse struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	UserID   uuid.UUID `json:"user_id"`
}

type profileResponse struct {
	User         uuid.UUID   `json:"user"`
	Username     string      `json:"username"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Email        string      `json:"email"`
	Type         entity.Role `json:"type"`
	File         *string     `json:"file"`
	Location     string      `json:"location"`
	Tel          string      `json:"tel"`
	Description  string      `json:"description"`
	WorkingHours string      `json:"working_hours"`
	CreatedAt    time.Time   `json:"created_at"`
}

type offerDetailResponse struct {
	ID                 uuid.UUID        `json:"id"`
	Title              string           `json:"title"`
	Revisions          int              `json:"revisions"`
	DeliveryTimeInDays int              `json:"delivery_time_in_days"`
	Price              decimal.Decimal  `json:"price"`
	Features           []string         `json:"features"`
	OfferType          entity.OfferType `json:"offer_type"`
	URL                string           `json:"url"`
}

type offerResponse struct {
	ID              uuid.UUID             `json:"id"`
	User            uuid.UUID             `json:"user"`
	Title           string                `json:"title"`
	Image           *string               `json:"image"`
	Description     string                `json:"description"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	Details         []offerDetailResponse `json:"details"`
	MinPrice        decimal.Decimal       `json:"min_price"`
	MinDeliveryTime int                   `json:"min_delivery_time"`
}

type updateOfferResponse struct {
	offerResponse
	DetailResults []entity.DetailUpdateResult `json:"detail_results"`
}

type offerPageResponse struct {
	Count    int64           `json:"count"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []offerResponse `json:"results"`
}

type orderResponse struct {
	ID                 uuid.UUID          `json:"id"`
	CustomerUser       uuid.UUID          `json:"customer_user"`
	BusinessUser       uuid.UUID          `json:"business_user"`
	Title              string             `json:"title"`
	Revisions          int                `json:"revisions"`
	DeliveryTimeInDays int                `json:"delivery_time_in_days"`
	Price              decimal.Decimal    `json:"price"`
	Features           []string           `json:"features"`
	OfferType          entity.OfferType   `json:"offer_type"`
	Status             entity.OrderStatus `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type reviewResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessUser uuid.UUID `json:"business_user"`
	Reviewer     uuid.UUID `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// --- Mappers ---

func toAuthResponse(token string, user *entity.User) authResponse {
	return authResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID,
	}
}

// mediaPath renders a stored reference, or null when nothing is stored.
// mediaPath turns a storage reference into the URL path it is served from.
func mediaPath(reference string) *string {
	if reference == "" {
		return nil
	}
	path := "/api/" + reference

	return &path
}

func toProfileResponse(user *entity.User) profileResponse {
	resp := profileResponse{
		User:      user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Type:      user.Role(),
		CreatedAt: user.CreatedAt,
	}
	if profile := user.Profile; profile != nil {
		resp.File = mediaPath(profile.File)
		resp.Location = profile.Location
		resp.Tel = profile.Tel
		resp.Description = profile.Description
		resp.WorkingHours = profile.WorkingHours
	}

	return resp
}

func toProfileResponses(users []*entity.User) []profileResponse {
	resp := make([]profileResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toProfileResponse(user))
	}

	return resp
}

func toOfferDetailResponse(detail *entity.OfferDetail) offerDetailResponse {
	return offerDetailResponse{
		ID:                 detail.ID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           detail.Features,
		OfferType:          detail.OfferType,
		URL:                detail.URL(),
	}
}

func toOfferResponse(offer *entity.Offer) offerResponse {
	details := make([]offerDetailResponse, 0, len(offer.Details))
	for _, detail := range offer.Details {
		details = append(details, toOfferDetailResponse(detail))
	}

	return offerResponse{
		ID:              offer.ID,
		User:            offer.UserID,
		Title:           offer.Title,
		Image:           mediaPath(offer.Image),
		Description:     offer.Description,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
		Details:         details,
		MinPrice:        offer.MinPrice,
		MinDeliveryTime: offer.MinDeliveryTime,
	}
}

func toOfferResponses(offers []*entity.Offer) []offerResponse {
	resp := make([]offerResponse, 0, len(offers))
	for _, offer := range offers {
		resp = append(resp, toOfferResponse(offer))
	}

	return resp
}

func toOrderResponse(order *entity.Order) orderResponse {
	return orderResponse{
		ID:                 order.ID,
		CustomerUser:       order.CustomerUserID,
		BusinessUser:       order.BusinessUserID,
		Title:              order.Title,
		Revisions:          order.Revisions,
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Price:              order.Price,
		Features:           order.Features,
		OfferType:          order.OfferType,
		Status:             order.Status,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []orderResponse {
	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}

	return resp
}

func toReviewResponse(review *entity.Review) reviewResponse {
	return reviewResponse{
		ID:           review.ID,
		BusinessUser: review.BusinessUserID,
		Reviewer:     review.ReviewerID,
		Rating:       review.Rating,
		Description:  review.Description,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []reviewResponse {
	resp := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, toReviewResponse(review))
	}

	return resp
}
