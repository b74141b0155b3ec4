// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/config"
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router/handler"
	"bazaar/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	OfferHandler   *handler.OfferHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	StatsHandler   *handler.StatsHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	offerHandler   *handler.OfferHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	statsHandler   *handler.StatsHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		profileHandler: params.ProfileHandler,
		offerHandler:   params.OfferHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		statsHandler:   params.StatsHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled && r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")

	// Public routes
	api.POST("/registration/", r.accountHandler.Register)
	api.POST("/login/", r.accountHandler.Login)
	api.GET("/base-info/", r.statsHandler.BaseInfo)
	api.GET("/offers/", r.offerHandler.ListOffers)
	api.GET("/offers/:id/", r.offerHandler.GetOffer)
	api.GET("/offers/:id/qr/", r.offerHandler.QRCode)
	api.POST("/offers/resolve-code/", r.offerHandler.ResolveCode)
	api.GET("/offerdetails/:id/", r.offerHandler.GetOfferDetail)
	api.GET("/order-count/:business_user_id/", r.orderHandler.OrderCount)
	api.GET("/completed-order-count/:business_user_id/", r.orderHandler.CompletedOrderCount)
	api.GET("/media/*", r.mediaHandler.Serve)

	// Everything below requires a bearer token
	authed := api.Group("", r.authMiddleware.Authenticate)

	profileGroup := authed.Group("/profile")
	{
		profileGroup.GET("/:id/", r.profileHandler.GetProfile)
		profileGroup.PATCH("/:id/", r.profileHandler.UpdateProfile)
		profileGroup.POST("/:id/avatar/", r.profileHandler.UploadAvatar)
	}

	profilesGroup := authed.Group("/profiles")
	{
		profilesGroup.GET("/business/", r.profileHandler.ListBusinessProfiles)
		profilesGroup.GET("/customer/", r.profileHandler.ListCustomerProfiles)
	}

	offersGroup := authed.Group("/offers")
	{
		offersGroup.POST("/", r.offerHandler.CreateOffer)
		offersGroup.PATCH("/:id/", r.offerHandler.UpdateOffer)
		offersGroup.DELETE("/:id/", r.offerHandler.DeleteOffer)
		offersGroup.POST("/:id/image/", r.offerHandler.UploadImage)
	}

	ordersGroup := authed.Group("/orders")
	{
		ordersGroup.GET("/", r.orderHandler.ListOrders)
		ordersGroup.POST("/", r.orderHandler.CreateOrder)
		ordersGroup.GET("/:id/", r.orderHandler.GetOrder)
		ordersGroup.PATCH("/:id/", r.orderHandler.UpdateOrder)
		ordersGroup.DELETE("/:id/", r.orderHandler.DeleteOrder)
	}

	reviewsGroup := authed.Group("/reviews")
	{
		reviewsGroup.GET("/", r.reviewHandler.ListReviews)
		reviewsGroup.POST("/", r.reviewHandler.CreateReview)
		reviewsGroup.GET("/:id/", r.reviewHandler.GetReview)
		reviewsGroup.PATCH("/:id/", r.reviewHandler.UpdateReview)
		reviewsGroup.DELETE("/:id/", r.reviewHandler.DeleteReview)
	}
}
