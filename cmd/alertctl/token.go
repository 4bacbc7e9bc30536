package main

import (
	"fmt"
	"time"

	"fleetalert/config"
	"fleetalert/internal/infra/auth"

	"github.com/spf13/cobra"
)

const defaultTriggerTokenTTL = 365 * 24 * time.Hour

// newTokenCommand mints a bearer token for POST /internal/alerts/dispatch.
func newTokenCommand() *cobra.Command {
	var (
		ttl     time.Duration
		subject string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a trigger token for the dispatch endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			token, err := auth.NewJWTService(cfg).GenerateTriggerToken(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", defaultTriggerTokenTTL, "token lifetime")
	cmd.Flags().StringVar(&subject, "subject", "scheduler", "caller recorded in the run log")

	return cmd
}
