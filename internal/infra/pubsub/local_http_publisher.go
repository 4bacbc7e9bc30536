package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"fleetalert/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/alert-runs-sub"

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			// A run may take as long as dispatch.runTimeout before the worker answers
			Timeout: 5 * time.Minute,
		},
		logger: logger,
	}
}

// PublishRunRequest publishes a run request by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishRunRequest(ctx context.Context, event *service.RunRequestEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: localSubscription,
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = runRequestAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Publishing run request",
		slog.String("endpoint", p.endpoint),
		slog.String("request_id", event.RequestID),
		slog.String("reference_date", event.ReferenceDate),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Run request delivered",
		slog.String("request_id", event.RequestID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

// runRequestAttributes builds the message attributes used for filtering and tracing.
func runRequestAttributes(event *service.RunRequestEvent) map[string]string {
	attributes := map[string]string{
		"event_type": "alert_run_requested",
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}
	if event.ReferenceDate != "" {
		attributes["reference_date"] = event.ReferenceDate
	}

	return attributes
}
