package main

import (
	"fmt"

	"fleetalert/internal/infra/notification"

	"github.com/spf13/cobra"
)

// newVAPIDCommand prints a fresh VAPID key pair in the env override format.
func newVAPIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vapid",
		Short: "Generate a VAPID key pair for web push",
		RunE: func(cmd *cobra.Command, _ []string) error {
			privateKey, publicKey, err := notification.GenerateVAPIDKeys()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "WEBPUSH_VAPIDPUBLICKEY=%s\n", publicKey)
			fmt.Fprintf(cmd.OutOrStdout(), "WEBPUSH_VAPIDPRIVATEKEY=%s\n", privateKey)

			return nil
		},
	}
}
