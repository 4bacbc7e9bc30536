// Package notification implements the push transports used by the alert dispatcher.
package notification

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"fleetalert/config"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/service"
	"fleetalert/internal/errors"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/goccy/go-json"
)

// maxErrorBodySize bounds how much of a push service rejection is kept in DeliveryError.Detail.
const maxErrorBodySize = 1 << 10

type webPushSender struct {
	client          webpush.HTTPClient
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string
	ttl             int
	urgency         webpush.Urgency
	logger          *slog.Logger
}

// NewWebPushSender creates a VAPID web push sender. client may be nil to use the library default.
func NewWebPushSender(cfg *config.Config, client webpush.HTTPClient, logger *slog.Logger) (service.PushSender, error) {
	if cfg.WebPush == nil ||
		strings.TrimSpace(cfg.WebPush.VAPIDPublicKey) == "" ||
		strings.TrimSpace(cfg.WebPush.VAPIDPrivateKey) == "" {
		return nil, domainerrors.ErrPushCredentialsMissing.Wrap(errors.New("webPush.vapidPublicKey and webPush.vapidPrivateKey are required"))
	}

	return &webPushSender{
		client:          client,
		vapidPublicKey:  cfg.WebPush.VAPIDPublicKey,
		vapidPrivateKey: cfg.WebPush.VAPIDPrivateKey,
		subscriber:      cfg.WebPush.Subscriber,
		ttl:             cfg.Push.TTL,
		urgency:         parseUrgency(cfg.Push.Urgency),
		logger:          logger,
	}, nil
}

// webPushPayload is the JSON document read by the service worker.
type webPushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Tag   string            `json:"tag,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

func (s *webPushSender) Transport() string {
	return constants.PushTransportWebPush
}

// Send encrypts msg for sub and posts it to the subscription endpoint.
func (s *webPushSender) Send(ctx context.Context, sub *entity.PushSubscription, msg *entity.PushMessage) error {
	if sub == nil || msg == nil {
		return errors.New("web push: subscription and message are required")
	}
	if sub.P256dh == "" || sub.Auth == "" {
		return service.NewDeliveryError(0, "subscription has no encryption keys", nil)
	}

	payload, err := json.Marshal(webPushPayload{
		Title: msg.Title,
		Body:  msg.Body,
		Tag:   msg.Tag,
		Data:  msg.Data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode web push payload")
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.subscriber,
		TTL:             s.ttl,
		Urgency:         s.urgency,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
	})
	if err != nil {
		return service.NewDeliveryError(0, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		detail := strings.TrimSpace(string(body))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}

		return service.NewDeliveryError(resp.StatusCode, detail, nil)
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	s.logger.DebugContext(ctx, "[WebPush] Notification accepted",
		slog.String("subscriptionID", sub.ID.String()),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

func parseUrgency(value string) webpush.Urgency {
	switch webpush.Urgency(strings.ToLower(strings.TrimSpace(value))) {
	case webpush.UrgencyVeryLow:
		return webpush.UrgencyVeryLow
	case webpush.UrgencyLow:
		return webpush.UrgencyLow
	case webpush.UrgencyNormal:
		return webpush.UrgencyNormal
	default:
		return webpush.UrgencyHigh
	}
}

// GenerateVAPIDKeys returns a new base64url-encoded VAPID key pair.
func GenerateVAPIDKeys() (privateKey, publicKey string, err error) {
	privateKey, publicKey, err = webpush.GenerateVAPIDKeys()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate VAPID keys")
	}

	return privateKey, publicKey, nil
}
