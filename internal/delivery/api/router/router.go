// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	MerchantHandler *handler.MerchantHandler
	ProductHandler  *handler.ProductHandler
	TagHandler      *handler.TagHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *middleware.RateLimiter
	Gatherer        prometheus.Gatherer `optional:"true"`
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	authHandler     *handler.AuthHandler
	merchantHandler *handler.MerchantHandler
	productHandler  *handler.ProductHandler
	tagHandler      *handler.TagHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     *middleware.RateLimiter
	gatherer        prometheus.Gatherer
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		authHandler:     params.AuthHandler,
		merchantHandler: params.MerchantHandler,
		productHandler:  params.ProductHandler,
		tagHandler:      params.TagHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimiter:     params.RateLimiter,
		gatherer:        params.Gatherer,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Role and ownership gates live in the usecases; routes only require a principal.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)

	if m := r.config.Metrics; m != nil && m.Enabled && r.gatherer != nil {
		e.GET(m.Path, echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	authenticate := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
	}

	// Storefront routes
	merchantsGroup := e.Group("/merchants")
	{
		merchantsGroup.POST("", r.merchantHandler.CreateMerchant, authenticate)
		merchantsGroup.GET("/me", r.merchantHandler.GetMyMerchant, authenticate)
		merchantsGroup.GET("/:id/qrcode", r.merchantHandler.GetStorefrontQR)
	}

	// Catalog routes
	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/merchant/:id", r.productHandler.ListProductsByMerchant)
		productsGroup.GET("/:id", r.productHandler.GetProduct)

		productsGroup.POST("", r.productHandler.CreateProduct, authenticate)
		productsGroup.GET("/me", r.productHandler.ListMyProducts, authenticate)
		productsGroup.PATCH("/:id", r.productHandler.UpdateProduct, authenticate)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, authenticate)
		productsGroup.POST("/:id/tags", r.productHandler.AddTags, authenticate)
		productsGroup.DELETE("/:id/tags/:code", r.productHandler.RemoveTag, authenticate)
	}

	// Dietary tag vocabulary
	tagsGroup := e.Group("/tags")
	{
		tagsGroup.GET("", r.tagHandler.ListTags)
		tagsGroup.POST("", r.tagHandler.CreateTag, authenticate)
		tagsGroup.PUT("/:id", r.tagHandler.UpdateTag, authenticate)
		tagsGroup.DELETE("/:id", r.tagHandler.DeleteTag, authenticate)
	}
}
