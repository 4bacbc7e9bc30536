package handler

import (
	"log/slog"
	"net/http"

	"fleetalert/config"
	"fleetalert/internal/delivery/api/middleware"
	"fleetalert/internal/delivery/api/response"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// SubscriptionHandler manages push subscription registration
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	transport      string
	vapidPublicKey string
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	handler := &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		transport:      params.Config.Push.Transport,
		logger:         params.Logger,
	}
	if params.Config.WebPush != nil {
		handler.vapidPublicKey = params.Config.WebPush.VAPIDPublicKey
	}

	return handler
}

// RegisterSubscriptionRequest accepts the browser's PushSubscription.toJSON() shape.
// FCM clients send their registration token as the endpoint and no keys.
type RegisterSubscriptionRequest struct {
	Endpoint string `json:"endpoint" validate:"required,max=2048"`
	Keys     struct {
		P256dh string `json:"p256dh" validate:"omitempty,max=256"`
		Auth   string `json:"auth" validate:"omitempty,max=256"`
	} `json:"keys"`
}

// UnregisterSubscriptionRequest identifies the subscription to drop, from the body or the query string
type UnregisterSubscriptionRequest struct {
	Endpoint string `json:"endpoint" query:"endpoint" validate:"required,max=2048"`
}

// VAPIDKeyResponse is what a browser needs to call pushManager.subscribe
type VAPIDKeyResponse struct {
	Transport string `json:"transport"`
	PublicKey string `json:"public_key"`
}

// RegisterSubscription upserts the caller's push subscription
func (h *SubscriptionHandler) RegisterSubscription(c echo.Context) error {
	var req RegisterSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var owner *uuid.UUID
	if userID, ok := middleware.GetUserID(c); ok {
		owner = &userID
	}

	subscription, err := h.subscriptionUC.Register(c.Request().Context(), owner, &usecase.RegisterSubscriptionInput{
		Endpoint:  req.Endpoint,
		P256dh:    req.Keys.P256dh,
		Auth:      req.Keys.Auth,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}

// UnregisterSubscription removes a push subscription by endpoint
func (h *SubscriptionHandler) UnregisterSubscription(c echo.Context) error {
	var req UnregisterSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.subscriptionUC.Unregister(c.Request().Context(), req.Endpoint); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Subscription removed successfully"})
}

// GetVAPIDPublicKey exposes the application server key for web push clients
func (h *SubscriptionHandler) GetVAPIDPublicKey(c echo.Context) error {
	if h.transport != constants.PushTransportWebPush || h.vapidPublicKey == "" {
		return response.Error(c, http.StatusNotFound, "VAPID_KEY_NOT_CONFIGURED", "Web push is not configured", nil)
	}

	return response.Success(c, http.StatusOK, VAPIDKeyResponse{
		Transport: h.transport,
		PublicKey: h.vapidPublicKey,
	})
}
