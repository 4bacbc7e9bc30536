package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"fleetalert/config"
	"fleetalert/internal/delivery"
	"fleetalert/internal/delivery/api"
	"fleetalert/internal/delivery/api/middleware"
	"fleetalert/internal/delivery/api/router/handler"
	"fleetalert/internal/infra/auth"
	"fleetalert/internal/infra/cache"
	logs "fleetalert/internal/infra/log"
	"fleetalert/internal/infra/metrics"
	"fleetalert/internal/infra/notification"
	"fleetalert/internal/infra/persistence/postgres"
	"fleetalert/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		config.NewThresholds,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVehicleRepository,
			postgres.NewSubscriptionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.NewPushSender,
			metrics.New,
			cache.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAlertService,
			impl.NewDispatchService,
			impl.NewRunnerService,
			impl.NewPushSubscriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlertHandler,
			handler.NewSubscriptionHandler,
			handler.NewTriggerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
