// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fleetalert/config"
	"fleetalert/internal/delivery/api/middleware"
	"fleetalert/internal/delivery/api/router/handler"
	"fleetalert/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler        *handler.AlertHandler
	SubscriptionHandler *handler.SubscriptionHandler
	TriggerHandler      *handler.TriggerHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	alertHandler        *handler.AlertHandler
	subscriptionHandler *handler.SubscriptionHandler
	triggerHandler      *handler.TriggerHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:        params.AlertHandler,
		subscriptionHandler: params.SubscriptionHandler,
		triggerHandler:      params.TriggerHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	// Dashboard alerts
	alertsGroup := apiV1.Group("/alerts")
	{
		alertsGroup.GET("", r.alertHandler.GetAlerts)
		alertsGroup.GET("/summary", r.alertHandler.GetSummary)
	}

	// Push registration; an access token is optional and only sets the owner
	pushGroup := apiV1.Group("/push")
	{
		pushGroup.GET("/vapid-public-key", r.subscriptionHandler.GetVAPIDPublicKey)

		subscriptionsGroup := pushGroup.Group("/subscriptions")
		subscriptionsGroup.Use(r.authMiddleware.OptionalOwner)
		subscriptionsGroup.POST("", r.subscriptionHandler.RegisterSubscription)
		subscriptionsGroup.DELETE("", r.subscriptionHandler.UnregisterSubscription)
	}

	// Scheduler entry point
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.authMiddleware.RequireTrigger)
	{
		internalGroup.POST("/alerts/dispatch", r.triggerHandler.Dispatch)
	}
}
