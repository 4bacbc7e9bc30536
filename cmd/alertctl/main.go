// Command alertctl runs and triggers fleet alert dispatches and manages their credentials.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "alertctl",
		Short:         "Fleet compliance alert operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newRunCommand(),
		newTriggerCommand(),
		newTokenCommand(),
		newVAPIDCommand(),
	)

	return cmd
}
