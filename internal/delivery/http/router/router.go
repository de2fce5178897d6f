// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cardbox/internal/delivery/http/middleware"
	"cardbox/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	CardHandler    *handler.CardHandler
	ShareHandler   *handler.ShareHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	cardHandler    *handler.CardHandler
	shareHandler   *handler.ShareHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		cardHandler:    params.CardHandler,
		shareHandler:   params.ShareHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
	}

	// Public card view, driven entirely by the share token in the URL.
	e.GET("/card", r.shareHandler.PublicCard)

	// Management routes that require an operator session.
	cardGroup := e.Group("/cards")
	cardGroup.Use(r.authMiddleware.Authenticate)
	{
		cardGroup.GET("", r.cardHandler.List)
		cardGroup.POST("", r.cardHandler.Create)
		cardGroup.POST("/reorder", r.cardHandler.Reorder)
		cardGroup.GET("/:id", r.cardHandler.Get)
		cardGroup.PUT("/:id", r.cardHandler.Update)
		cardGroup.PATCH("/:id/field", r.cardHandler.SetField)
		cardGroup.DELETE("/:id", r.cardHandler.Delete)
		cardGroup.POST("/:id/activate", r.cardHandler.Activate)
		cardGroup.GET("/:id/share", r.shareHandler.Share)
		cardGroup.GET("/:id/share/qr", r.shareHandler.ShareQR)
		cardGroup.GET("/:id/vcard", r.shareHandler.VCard)
	}
}
