// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"suasana/internal/delivery/http/middleware"
	"suasana/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	PreferenceHandler *handler.PreferenceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	preferenceHandler *handler.PreferenceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		preferenceHandler: params.PreferenceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth entry points; these are the only routes that mint tokens.
	e.POST("/users/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// Profile routes, all scoped to the token-resolved identity.
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.GetProfile)
		userGroup.PUT("", r.userHandler.UpdateProfile)
		userGroup.DELETE("", r.userHandler.DeleteProfile)
	}

	// Preference routes, also token-scoped.
	prefGroup := e.Group("/preferensi")
	prefGroup.Use(r.authMiddleware.Authenticate)
	{
		prefGroup.POST("", r.preferenceHandler.Create)
		prefGroup.GET("", r.preferenceHandler.List)
	}
}
