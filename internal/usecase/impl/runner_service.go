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
	"fleetalert/internal/usecase"

	"go.uber.org/fx"
)

// runnerService implements the RunnerUsecase interface.
type runnerService struct {
	vehicleRepo      repository.VehicleRepository
	subscriptionRepo repository.SubscriptionRepository
	dispatcher       usecase.DispatchUsecase
	metrics          service.Metrics
	thresholds       entity.Thresholds
	runTimeout       time.Duration
	clock            referenceClock
	logger           *slog.Logger
}

// RunnerServiceParams holds dependencies for RunnerService, injected by Fx.
type RunnerServiceParams struct {
	fx.In

	VehicleRepo      repository.VehicleRepository
	SubscriptionRepo repository.SubscriptionRepository
	Dispatcher       usecase.DispatchUsecase
	Metrics          service.Metrics
	Thresholds       *entity.Thresholds
	Config           *config.Config
	Logger           *slog.Logger
}

// NewRunnerService is the constructor for runnerService.
func NewRunnerService(params RunnerServiceParams) usecase.RunnerUsecase {
	return &runnerService{
		vehicleRepo:      params.VehicleRepo,
		subscriptionRepo: params.SubscriptionRepo,
		dispatcher:       params.Dispatcher,
		metrics:          params.Metrics,
		thresholds:       *params.Thresholds,
		runTimeout:       params.Config.Dispatch.RunTimeout,
		clock:            newReferenceClock(params.Config.Location()),
		logger:           params.Logger,
	}
}

func (srv *runnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Run performs one alert run for ref.
func (srv *runnerService) Run(ctx context.Context, ref time.Time) (*entity.RunReport, error) {
	startedAt := time.Now()
	ref = srv.clock.resolve(ref)

	if srv.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.runTimeout)
		defer cancel()
	}

	report, err := srv.run(ctx, ref)
	duration := time.Since(startedAt)
	srv.metrics.ObserveRun(report, err, duration)

	logger := srv.log(ctx).With(slog.String("referenceDate", ref.Format(time.DateOnly)))
	if err != nil {
		logger.ErrorContext(ctx, "[Runner] Alert run aborted", slog.Any("error", err))

		return nil, err
	}
	report.Duration = duration

	logger.InfoContext(ctx, "[Runner] Alert run completed",
		slog.Int("alerts", report.AlertsCount),
		slog.Int("subscriptions", report.TotalSubscriptions),
		slog.Int("sent", report.Sent),
		slog.Int("pruned", report.Pruned),
		slog.Int("failed", report.Failed),
		slog.Duration("duration", duration),
	)

	return report, nil
}

func (srv *runnerService) run(ctx context.Context, ref time.Time) (*entity.RunReport, error) {
	vehicles, err := srv.vehicleRepo.ListActiveVehicles(ctx)
	if err != nil {
		return nil, domainerrors.ErrVehicleFetchFailed.Wrap(err)
	}

	subscriptions, err := srv.subscriptionRepo.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.ErrSubscriptionFetchFailed.Wrap(err)
	}

	alerts := alert.Aggregate(vehicles, ref, srv.thresholds)

	dispatch, err := srv.dispatcher.Dispatch(ctx, alerts, subscriptions)
	if err != nil {
		return nil, err
	}

	details := make([]entity.AlertDetail, 0, len(alerts))
	for _, event := range alerts {
		details = append(details, entity.NewAlertDetail(event))
	}

	return &entity.RunReport{
		ReferenceDate:      ref,
		Sent:               dispatch.Succeeded,
		TotalSubscriptions: len(subscriptions),
		AlertsCount:        len(alerts),
		Pruned:             dispatch.PrunedInvalid,
		Failed:             dispatch.OtherFailures,
		Summary:            alert.Summarize(alerts),
		Details:            details,
	}, nil
}
