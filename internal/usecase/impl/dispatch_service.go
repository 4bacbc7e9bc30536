package impl

import (
	"context"
	"log/slog"
	"time"

	"fleetalert/config"
	deliverycontext "fleetalert/internal/delivery/context"
	"fleetalert/internal/domain/alert"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/repository"
	"fleetalert/internal/domain/service"
	"fleetalert/internal/errors"
	"fleetalert/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	subscriptionRepo repository.SubscriptionRepository
	sender           service.PushSender
	metrics          service.Metrics
	workers          int
	sendTimeout      time.Duration
	title            string
	logger           *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Sender           service.PushSender `optional:"true"`
	Metrics          service.Metrics
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		subscriptionRepo: params.SubscriptionRepo,
		sender:           params.Sender,
		metrics:          params.Metrics,
		workers:          max(params.Config.Dispatch.Workers, 1),
		sendTimeout:      params.Config.Dispatch.SendTimeout,
		title:            params.Config.Dispatch.Title,
		logger:           params.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch sends one message summarizing alerts to every subscription with bounded concurrency.
func (srv *dispatchService) Dispatch(
	ctx context.Context,
	alerts []entity.AlertEvent,
	subscriptions []*entity.PushSubscription,
) (*entity.DispatchReport, error) {
	report := &entity.DispatchReport{Alerts: alerts}

	message := alert.ComposeMessage(alerts, srv.title)
	if message == nil {
		return report, nil
	}

	if srv.sender == nil {
		return nil, domainerrors.ErrPushCredentialsMissing
	}

	report.Message = message
	if len(subscriptions) == 0 {
		return report, nil
	}

	outcomes := make([]string, len(subscriptions))

	var group errgroup.Group
	group.SetLimit(srv.workers)

	for i, subscription := range subscriptions {
		group.Go(func() error {
			outcomes[i] = srv.deliver(ctx, subscription, message)

			return nil
		})
	}
	_ = group.Wait()

	report.Attempted = len(subscriptions)
	for _, outcome := range outcomes {
		switch outcome {
		case service.DeliveryOutcomeSucceeded:
			report.Succeeded++
		case service.DeliveryOutcomePruned:
			report.PrunedInvalid++
		default:
			report.OtherFailures++
		}
	}

	srv.log(ctx).InfoContext(ctx, "[Dispatch] Dispatch completed",
		slog.String("transport", srv.sender.Transport()),
		slog.Int("alerts", len(alerts)),
		slog.Int("attempted", report.Attempted),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("pruned", report.PrunedInvalid),
		slog.Int("failed", report.OtherFailures),
	)

	return report, nil
}

// deliver sends message to one subscription and prunes it when the push service reports it gone.
func (srv *dispatchService) deliver(ctx context.Context, subscription *entity.PushSubscription, message *entity.PushMessage) string {
	outcome := srv.attempt(ctx, subscription, message)
	srv.metrics.ObserveDelivery(outcome)

	return outcome
}

func (srv *dispatchService) attempt(ctx context.Context, subscription *entity.PushSubscription, message *entity.PushMessage) string {
	logger := srv.log(ctx).With(slog.String("subscriptionID", subscription.ID.String()))

	// The run deadline passed while this delivery was queued
	if err := ctx.Err(); err != nil {
		logger.WarnContext(ctx, "[Dispatch] Delivery abandoned", slog.Any("error", err))

		return service.DeliveryOutcomeFailed
	}

	sendCtx, cancel := context.WithTimeout(ctx, srv.sendTimeout)
	err := srv.sender.Send(sendCtx, subscription, message)
	cancel()

	if err == nil {
		return service.DeliveryOutcomeSucceeded
	}

	if !service.IsPermanentDeliveryError(err) {
		logger.WarnContext(ctx, "[Dispatch] Delivery failed", slog.Any("error", err))

		return service.DeliveryOutcomeFailed
	}

	// Pruning must survive the run deadline: the push service already confirmed the endpoint is gone.
	removeCtx, cancelRemove := context.WithTimeout(context.WithoutCancel(ctx), srv.sendTimeout)
	defer cancelRemove()

	if removeErr := srv.subscriptionRepo.Remove(removeCtx, subscription.ID); removeErr != nil &&
		!errors.Is(removeErr, repository.ErrSubscriptionNotFound) {
		logger.ErrorContext(ctx, "[Dispatch] Failed to prune invalid subscription",
			slog.Any("deliveryError", err),
			slog.Any("error", removeErr),
		)

		return service.DeliveryOutcomeFailed
	}

	logger.InfoContext(ctx, "[Dispatch] Pruned invalid subscription", slog.Any("deliveryError", err))

	return service.DeliveryOutcomePruned
}
