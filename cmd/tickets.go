package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/remote-assist-console/internal/adapters/outbox/discard"
	"github.com/bnema/remote-assist-console/internal/adapters/repo/builtin"
	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/spf13/cobra"
)

func newTicketsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Manage the ticket queue seed",
	}

	cmd.AddCommand(
		newTicketsListCmd(app),
		newTicketsInitCmd(app),
	)

	return cmd
}

func newTicketsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tickets a new console session starts with",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.newService(cmd.Context(), discard.Sink{})
			if err != nil {
				return err
			}

			views := service.Snapshot().Tickets
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			for _, view := range views {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\t%s\n",
					view.ID, view.VehicleID, view.Stalled, view.Priority, view.Context, ticketBadge(view))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tickets as JSON")

	return cmd
}

func newTicketsInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in ticket queue to the configured tickets file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				_, err := app.seedFile.List(cmd.Context())
				switch {
				case err == nil:
					return fmt.Errorf("tickets file %s already exists (use --force to overwrite)", app.cfg.TicketsPath)
				case !errors.Is(err, domain.ErrSeedNotFound):
					return fmt.Errorf("tickets file %s is unreadable (use --force to overwrite): %w", app.cfg.TicketsPath, err)
				}
			}

			if err := app.seedFile.ReplaceAll(cmd.Context(), builtin.Tickets()); err != nil {
				return fmt.Errorf("write tickets file: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %d tickets to %s\n", len(builtin.Tickets()), app.cfg.TicketsPath)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing tickets file")

	return cmd
}

func ticketBadge(view application.TicketView) string {
	if view.AssignedTo == domain.AssigneeOther {
		return view.AssignedOperator
	}
	return view.Badge
}
