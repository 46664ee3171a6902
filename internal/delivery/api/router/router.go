// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"containerview/config"
	"containerview/internal/delivery/api/middleware"
	"containerview/internal/delivery/api/router/handler"
	"containerview/internal/domain/entity"
	"containerview/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	TOTPHandler    *handler.TOTPHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	totpHandler    *handler.TOTPHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		totpHandler:    params.TOTPHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authenticate is installed globally by the server, so every route sees the principal.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	requireAuth := r.authMiddleware.RequireAuthenticated()
	requireAdmin := r.authMiddleware.RequirePermission(entity.PermissionAdmin)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/verify", r.authHandler.Verify)
		authGroup.POST("/verify/totp", r.authHandler.VerifyTOTP)

		authGroup.POST("/register", r.userHandler.Register, requireAdmin)
		authGroup.GET("/me", r.userHandler.Me, requireAuth)
		authGroup.POST("/totp/setup", r.totpHandler.Setup, requireAuth)
		authGroup.POST("/totp/enable", r.totpHandler.Enable, requireAuth)
	}
}
