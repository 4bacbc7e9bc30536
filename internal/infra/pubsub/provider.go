package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"fleetalert/config"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrPublisherDisabled is returned for run requests when no Pub/Sub provider is configured.
var ErrPublisherDisabled = errors.New("pubsub is not configured, use alertctl run or the dispatch endpoint")

// disabledPublisher rejects every run request.
type disabledPublisher struct{}

func (disabledPublisher) PublishRunRequest(_ context.Context, _ *service.RunRequestEvent) error {
	return ErrPublisherDisabled
}

func (disabledPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx.
// Run requests are published by alertctl trigger and consumed by the alert worker.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the run request publisher selected by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("PubSub not configured, run requests will be rejected")

		return disabledPublisher{}, nil
	}

	var (
		publisher service.EventPublisher
		err       error
	)

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		endpoint := localEndpoint(params.Config)
		logger.Info("Publishing run requests straight to the local worker", slog.String("endpoint", endpoint))

		publisher = NewLocalHTTPPublisher(endpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing run requests to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// localEndpoint returns pubsub.localEndpoint, defaulting to the push route of a worker on this host.
func localEndpoint(cfg *config.Config) string {
	if cfg.PubSub != nil && cfg.PubSub.LocalEndpoint != "" {
		return cfg.PubSub.LocalEndpoint
	}

	return fmt.Sprintf("http://localhost:%d/push", cfg.Worker.Port)
}
