package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bnema/remote-assist-console/internal/domain"

	"github.com/spf13/cobra"
)

func newOutboxCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbox",
		Short: "Inspect commands sent from the console",
	}

	cmd.AddCommand(newOutboxListCmd(app), newOutboxCountCmd(app))

	return cmd
}

func newOutboxListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sent commands, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outbox, err := app.openOutbox()
			if err != nil {
				return err
			}
			defer func() { _ = outbox.close() }()

			if outbox.outbox == nil {
				return errNoOutbox
			}

			commands, err := outbox.outbox.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list outbox: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(commands)
			}

			if len(commands) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "outbox is empty")
				return err
			}
			for _, c := range commands {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					c.IssuedAt.Format("2006-01-02 15:04:05"), c.ID, c.Kind, c.Summary())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print commands as JSON")

	return cmd
}

func newOutboxCountCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count sent commands per kind",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outbox, err := app.openOutbox()
			if err != nil {
				return err
			}
			defer func() { _ = outbox.close() }()

			if outbox.outbox == nil {
				return errNoOutbox
			}

			counts, err := outbox.outbox.CountByKind(cmd.Context())
			if err != nil {
				return fmt.Errorf("count outbox: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(counts)
			}

			kinds := make([]domain.CommandKind, 0, len(counts))
			for kind := range counts {
				kinds = append(kinds, kind)
			}
			sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

			for _, kind := range kinds {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", kind, counts[kind])
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print counts as JSON")

	return cmd
}
