package main

import (
	"context"
	"fmt"
	"os/user"

	"fleetalert/config"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/service"
	logs "fleetalert/internal/infra/log"
	"fleetalert/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newTriggerCommand publishes a run request for the alert worker.
func newTriggerCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Publish a run request to the alert worker through Pub/Sub",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			var publisher service.EventPublisher
			app := fx.New(
				fx.NopLogger,
				fx.Provide(
					config.New,
					logs.New,
					context.Background,
					pubsub.NewEventPublisher,
				),
				fx.Populate(&publisher),
			)

			ctx := cmd.Context()
			if err := app.Start(ctx); err != nil {
				return errors.Wrap(err, "failed to start")
			}
			defer func() { _ = app.Stop(ctx) }()

			event := &service.RunRequestEvent{
				RequestID:   uuid.NewString(),
				RequestedBy: requester(),
			}
			if !ref.IsZero() {
				event.ReferenceDate = ref.Format(constants.DateLayout)
			}

			if err := publisher.PublishRunRequest(ctx, event); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run request %s published\n", event.RequestID)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD), defaults to today at the worker")

	return cmd
}

func requester() string {
	current, err := user.Current()
	if err != nil {
		return "alertctl"
	}

	return "alertctl:" + current.Username
}
