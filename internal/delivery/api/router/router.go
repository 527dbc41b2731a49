// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"delicious/config"
	apimiddleware "delicious/internal/delivery/api/middleware"
	"delicious/internal/delivery/api/router/handler"
	"delicious/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	RecoveryHandler  *handler.RecoveryHandler
	StoreHandler     *handler.StoreHandler
	DiscoveryHandler *handler.DiscoveryHandler
	ReviewHandler    *handler.ReviewHandler
	AuthMiddleware   *apimiddleware.AuthMiddleware
	RateLimiter      *middleware.RateLimiter
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	recoveryHandler  *handler.RecoveryHandler
	storeHandler     *handler.StoreHandler
	discoveryHandler *handler.DiscoveryHandler
	reviewHandler    *handler.ReviewHandler
	authMiddleware   *apimiddleware.AuthMiddleware
	rateLimiter      *middleware.RateLimiter
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		recoveryHandler:  params.RecoveryHandler,
		storeHandler:     params.StoreHandler,
		discoveryHandler: params.DiscoveryHandler,
		reviewHandler:    params.ReviewHandler,
		authMiddleware:   params.AuthMiddleware,
		rateLimiter:      params.RateLimiter,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login, r.rateLimiter.Limit)
	}

	// Account routes. Recovery endpoints are public, the profile is not.
	accountGroup := e.Group("/account")
	{
		accountGroup.GET("", r.accountHandler.GetAccount, authenticate)
		accountGroup.PUT("", r.accountHandler.UpdateAccount, authenticate)
		accountGroup.POST("/forgot", r.recoveryHandler.Forgot, r.rateLimiter.Limit)
		accountGroup.GET("/reset/:token", r.recoveryHandler.ValidateReset)
		accountGroup.POST("/reset/:token", r.recoveryHandler.Reset)
	}

	// Store pages
	e.GET("/stores", r.storeHandler.ListStores)
	e.POST("/stores", r.storeHandler.CreateStore, authenticate)
	e.PUT("/stores/:id", r.storeHandler.UpdateStore, authenticate)
	e.GET("/store/:slug", r.storeHandler.GetStore)
	e.GET("/store/:slug/qr", r.storeHandler.StoreQRCode)
	e.GET("/tags", r.storeHandler.ListTags)
	e.GET("/tags/:tag", r.storeHandler.ListTags)
	e.GET("/uploads/:ref", r.storeHandler.Photo)

	// Review ledger
	reviewsGroup := e.Group("/reviews")
	{
		reviewsGroup.GET("/:storeId", r.reviewHandler.ListReviews)
		reviewsGroup.POST("/:storeId", r.reviewHandler.AddReview, authenticate)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	{
		apiV1.GET("/search", r.discoveryHandler.Search)
		apiV1.GET("/stores/near", r.discoveryHandler.Near)
		apiV1.GET("/stores/top", r.discoveryHandler.TopRated)
		apiV1.GET("/slug", r.discoveryHandler.Slug)
		apiV1.POST("/stores/:id/heart", r.accountHandler.ToggleHeart, authenticate)
		apiV1.GET("/hearts", r.accountHandler.Hearts, authenticate)
	}
}
