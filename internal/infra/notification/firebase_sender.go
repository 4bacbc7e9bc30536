package notification

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fleetalert/config"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/service"
	"fleetalert/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client used by the FCM sender.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseSender struct {
	client messagingClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewFirebaseSender creates an FCM sender. Subscription endpoints are FCM registration tokens.
func NewFirebaseSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || strings.TrimSpace(cfg.Firebase.CredentialsPath) == "" {
		return nil, domainerrors.ErrPushCredentialsMissing.Wrap(errors.New("firebase.credentialsPath is required"))
	}

	var appConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseSender(client, time.Duration(cfg.Push.TTL)*time.Second, logger), nil
}

func newFirebaseSender(client messagingClient, ttl time.Duration, logger *slog.Logger) *firebaseSender {
	return &firebaseSender{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *firebaseSender) Transport() string {
	return constants.PushTransportFCM
}

// Send delivers msg to the registration token stored as the subscription endpoint.
func (s *firebaseSender) Send(ctx context.Context, sub *entity.PushSubscription, msg *entity.PushMessage) error {
	if sub == nil || msg == nil {
		return errors.New("fcm: subscription and message are required")
	}

	ttl := s.ttl
	message := &messaging.Message{
		Token: sub.Endpoint,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			TTL:      &ttl,
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Tag: msg.Tag,
			},
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return toDeliveryError(err)
	}

	s.logger.DebugContext(ctx, "[FCM] Notification accepted",
		slog.String("subscriptionID", sub.ID.String()),
		slog.String("messageID", messageID),
	)

	return nil
}

// toDeliveryError maps FCM error codes onto the HTTP statuses used for pruning decisions.
func toDeliveryError(err error) *service.DeliveryError {
	switch {
	case messaging.IsUnregistered(err):
		return service.NewDeliveryError(http.StatusGone, "UNREGISTERED", err)
	case messaging.IsInvalidArgument(err):
		return service.NewDeliveryError(http.StatusNotFound, "INVALID_ARGUMENT", err)
	case messaging.IsSenderIDMismatch(err):
		return service.NewDeliveryError(http.StatusForbidden, "SENDER_ID_MISMATCH", err)
	case messaging.IsQuotaExceeded(err):
		return service.NewDeliveryError(http.StatusTooManyRequests, "QUOTA_EXCEEDED", err)
	case messaging.IsUnavailable(err):
		return service.NewDeliveryError(http.StatusServiceUnavailable, "UNAVAILABLE", err)
	case messaging.IsInternal(err):
		return service.NewDeliveryError(http.StatusInternalServerError, "INTERNAL", err)
	default:
		return service.NewDeliveryError(0, "send failed", err)
	}
}
