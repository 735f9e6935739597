package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/remote-assist-console/internal/adapters/outbox/discard"
	consolerender "github.com/bnema/remote-assist-console/internal/adapters/render/console"
	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the console a new session opens on",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.newService(cmd.Context(), discard.Sink{})
			if err != nil {
				return err
			}

			return writeSnapshotOutput(cmd, app, service.Snapshot(), "", asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the console snapshot as JSON")

	return cmd
}

func writeSnapshotOutput(cmd *cobra.Command, app *app, snap application.Snapshot, notice string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	rendered, err := app.renderer(snap, consolerender.RenderOptions{Notice: notice})
	if err != nil {
		return fmt.Errorf("render console: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
