package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/remote-assist-console/internal/adapters/events"
	consolerender "github.com/bnema/remote-assist-console/internal/adapters/render/console"
	"github.com/bnema/remote-assist-console/internal/adapters/script"
	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var (
		render bool
		asJSON bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "run [FILE|-]",
		Short: "Replay an operator script against a fresh console",
		Long:  "Replay an operator script, one console action per line, against a fresh console session. Reads stdin when FILE is - or omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if render && asJSON {
				return fmt.Errorf("--render and --json are mutually exclusive")
			}

			directives, err := readScript(cmd, args)
			if err != nil {
				return err
			}

			outbox, err := app.openOutbox()
			if err != nil {
				return err
			}
			defer func() { _ = outbox.close() }()

			recorder := events.NewRecorder(1)
			service, err := app.newService(cmd.Context(), outbox.sink,
				events.NewLogger(app.newLogger(cmd.ErrOrStderr())), recorder)
			if err != nil {
				return err
			}

			show := func(snap application.Snapshot) (string, error) {
				return consolerender.View(snap, consolerender.RenderOptions{}), nil
			}
			result, err := script.NewRunner(service, cmd.OutOrStdout(), show).Run(cmd.Context(), directives)
			if err != nil {
				return err
			}

			if render || asJSON {
				notice := ""
				if last, ok := recorder.Last(); ok {
					notice = last.Message
				}
				if err := writeSnapshotOutput(cmd, app, service.Snapshot(), notice, asJSON); err != nil {
					return err
				}
			}

			if strict && result.Failed > 0 {
				return fmt.Errorf("%d of %d script actions failed", result.Failed, result.Executed)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "Print the rendered console after the script")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final console snapshot as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any action failed")

	return cmd
}

func readScript(cmd *cobra.Command, args []string) ([]script.Directive, error) {
	var in io.Reader = cmd.InOrStdin()
	name := "stdin"

	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
		name = args[0]
	}

	directives, err := script.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	return directives, nil
}
