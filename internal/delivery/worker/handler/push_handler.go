package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fleetalert/config"
	deliverycontext "fleetalert/internal/delivery/context"
	"fleetalert/internal/domain/alert"
	"fleetalert/internal/domain/constants"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/service"
	"fleetalert/internal/errors"
	"fleetalert/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenVerifier checks the OIDC token Pub/Sub attaches to push requests
type tokenVerifier func(req *http.Request) error

// PushHandler runs alert dispatches requested through Pub/Sub push messages
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    tokenVerifier
	logger         *slog.Logger
	runnerUC       usecase.RunnerUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	RunnerUC usecase.RunnerUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry an OIDC token; local development posts directly
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		runnerUC:       params.RunnerUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Fetch failures answer 503 so Pub/Sub redelivers; nothing was sent in that case. Any other
// failure answers 200, since a retry could only repeat notifications that already went out.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.RunRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse run request event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)
	ctx = deliverycontext.WithTriggeredBy(ctx, event.RequestedBy)
	reqLogger = deliverycontext.GetLogger(ctx)

	reqLogger.Info("[Worker] Processing run request",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("reference_date", event.ReferenceDate),
	)

	if err := h.processRunRequest(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Run request failed",
			slog.Any("error", err),
			slog.Bool("retryable", errors.IsRetryable(err)),
		)
		if errors.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RunRequestEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processRunRequest runs the alert dispatch for the requested reference date
func (h *PushHandler) processRunRequest(ctx context.Context, event *service.RunRequestEvent) error {
	var ref time.Time
	if event.ReferenceDate != "" {
		parsed, err := alert.ParseDate(event.ReferenceDate)
		if err != nil {
			return domainerrors.ErrInvalidReferenceDate.Wrap(err)
		}
		ref = parsed
	}

	report, err := h.runnerUC.Run(ctx, ref)
	if err != nil {
		if errors.Is(err, domainerrors.ErrVehicleFetchFailed) || errors.Is(err, domainerrors.ErrSubscriptionFetchFailed) {
			return errors.Retryable(err)
		}

		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Run request processed",
		slog.String("reference_date", report.ReferenceDate.Format(constants.DateLayout)),
		slog.Int("sent", report.Sent),
		slog.Int("alerts", report.AlertsCount),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL configured on the subscription
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
