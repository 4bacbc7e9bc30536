// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"fleetalert/config"
	deliverycontext "fleetalert/internal/delivery/context"
	"fleetalert/internal/domain/alert"
	"fleetalert/internal/domain/entity"
	"fleetalert/internal/domain/repository"
	"fleetalert/internal/domain/service"
	"fleetalert/internal/usecase"

	"go.uber.org/fx"
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	vehicleRepo repository.VehicleRepository
	cache       service.AlertBoardCache
	metrics     service.Metrics
	thresholds  entity.Thresholds
	limit       int
	clock       referenceClock
	logger      *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	VehicleRepo repository.VehicleRepository
	Cache       service.AlertBoardCache
	Metrics     service.Metrics
	Thresholds  *entity.Thresholds
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		vehicleRepo: params.VehicleRepo,
		cache:       params.Cache,
		metrics:     params.Metrics,
		thresholds:  *params.Thresholds,
		limit:       params.Config.Alerts.DashboardLimit,
		clock:       newReferenceClock(params.Config.Location()),
		logger:      params.Logger,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDashboardAlerts builds the dashboard board for ref.
func (srv *alertService) GetDashboardAlerts(ctx context.Context, ref time.Time) (*entity.AlertBoard, error) {
	ref = srv.clock.resolve(ref)

	if board, ok := srv.cache.Get(ref); ok {
		srv.metrics.IncDashboardCache(true)

		return board, nil
	}
	srv.metrics.IncDashboardCache(false)

	vehicles, err := srv.vehicleRepo.ListActiveVehicles(ctx)
	if err != nil {
		srv.log(ctx).ErrorContext(ctx, "Failed to fetch vehicles for dashboard, serving degraded board",
			slog.String("referenceDate", ref.Format(time.DateOnly)),
			slog.Any("error", err),
		)

		return &entity.AlertBoard{
			ReferenceDate: ref,
			Alerts:        []entity.AlertEvent{},
			Degraded:      true,
		}, nil
	}

	events := alert.Aggregate(vehicles, ref, srv.thresholds)
	page := alert.Top(events, srv.limit)
	summary := alert.Summarize(events)

	if page.Alerts == nil {
		page.Alerts = []entity.AlertEvent{}
	}

	board := &entity.AlertBoard{
		ReferenceDate: ref,
		Alerts:        page.Alerts,
		Total:         page.Total,
		Remaining:     page.Remaining(),
		Summary:       summary,
	}

	if ref.Equal(srv.clock.today()) {
		srv.metrics.SetActiveAlerts(summary)
	}
	srv.cache.Set(ref, board)

	return board, nil
}
