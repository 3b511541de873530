// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mpeshop/internal/delivery/http/middleware"
	"mpeshop/internal/delivery/http/router/handler"
	"mpeshop/internal/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	StaffHandler    *handler.StaffHandler
	StaffAuth       *middleware.StaffAuthMiddleware
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	staffHandler    *handler.StaffHandler
	staffAuth       *middleware.StaffAuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		staffHandler:    params.StaffHandler,
		staffAuth:       params.StaffAuth,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Public shop routes: session cart, checkout, document download.
	shopGroup := e.Group("/shop")
	{
		shopGroup.GET("/products/:slug", r.cartHandler.GetProduct)
		shopGroup.GET("/cart", r.cartHandler.View)
		shopGroup.POST("/cart/items", r.cartHandler.AddItem)
		shopGroup.DELETE("/cart/items/:productID", r.cartHandler.RemoveItem)
		shopGroup.POST("/checkout", r.checkoutHandler.Checkout)
		shopGroup.GET("/orders/:id/pdf", r.orderHandler.DownloadPDF)
	}

	// Staff routes require a bearer token with the staff role.
	staffGroup := e.Group("/staff")
	staffGroup.Use(r.staffAuth.Authenticate)
	{
		staffGroup.GET("/orders/:id", r.staffHandler.GetOrder)
		staffGroup.PATCH("/orders/:id/status", r.staffHandler.UpdateStatus)
		staffGroup.POST("/orders/:id/resend-email", r.staffHandler.ResendEmail)
		staffGroup.POST("/products/import", r.staffHandler.ImportProducts)
		staffGroup.POST("/settings/reload", r.staffHandler.ReloadSettings)
	}
}
