package main

import (
	"fmt"
	"log/slog"
	"time"

	"fleetalert/config"
	deliverycontext "fleetalert/internal/delivery/context"
	"fleetalert/internal/domain/alert"
	logs "fleetalert/internal/infra/log"
	"fleetalert/internal/infra/metrics"
	"fleetalert/internal/infra/notification"
	"fleetalert/internal/infra/persistence/postgres"
	"fleetalert/internal/usecase"
	"fleetalert/internal/usecase/impl"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newRunCommand performs one alert run in-process, for cron style scheduling.
func newRunCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the fleet and dispatch alert notifications once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			var (
				runner usecase.RunnerUsecase
				logger *slog.Logger
			)
			app := fx.New(
				fx.NopLogger,
				fx.Provide(
					config.New,
					config.NewThresholds,
					logs.New,
					postgres.New,
					postgres.NewVehicleRepository,
					postgres.NewSubscriptionRepository,
					notification.NewPushSender,
					metrics.New,
					impl.NewDispatchService,
					impl.NewRunnerService,
				),
				fx.Populate(&runner, &logger),
			)

			ctx := cmd.Context()
			if err := app.Start(ctx); err != nil {
				return errors.Wrap(err, "failed to start")
			}
			defer func() { _ = app.Stop(ctx) }()

			runCtx := deliverycontext.WithTriggeredBy(deliverycontext.WithLogger(ctx, logger), requester())
			report, err := runner.Run(runCtx, ref)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to encode run report")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD), defaults to today in alerts.timezone")

	return cmd
}

func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	ref, err := alert.ParseDate(value)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid --date")
	}

	return ref, nil
}
