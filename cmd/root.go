package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ra",
		Short:         "Remote assistance console (ra): help stalled autonomous vehicles",
		Long:          "ra is a single-operator remote assistance console: pick a stalled vehicle from the ticket queue, take ownership, draw a path, nudge or relocate it, or edit the fleet map, and send commands through the configured outbox.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newTicketsCmd(app),
		newStatusCmd(app),
		newRunCmd(app),
		newConsoleCmd(app),
		newServeCmd(app),
		newOutboxCmd(app),
	)

	return rootCmd
}
