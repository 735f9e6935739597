package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/remote-assist-console/internal/adapters/events"
	"github.com/bnema/remote-assist-console/internal/adapters/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve one console session over a JSON HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := app.newLogger(cmd.ErrOrStderr())

			outbox, err := app.openOutbox()
			if err != nil {
				return err
			}
			defer func() { _ = outbox.close() }()

			recorder := events.NewRecorder(0)
			service, err := app.newService(ctx, outbox.sink, events.NewLogger(logger), recorder)
			if err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)
			router, err := httpapi.NewRouter(httpapi.Options{
				Service: service,
				Events:  recorder,
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			return httpapi.Serve(ctx, addr, router, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.cfg.HTTPAddr, "Listen address")

	return cmd
}
