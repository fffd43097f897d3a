package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alexanderramin/stagehand/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the admin API server and the reminder sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = app.Config.Listen
			}

			if app.Reminder != nil {
				if err := app.Reminder.Start(); err != nil {
					return fmt.Errorf("starting reminder sweep: %w", err)
				}
				defer app.Reminder.Stop()
			}

			srv := server.New(
				app.Events,
				app.DefaultTasks,
				app.Holdings,
				app.HoldingTasks,
				app.Channels,
				app.Logger,
			)

			app.Logger.Info("server started", slog.String("listen", listen))
			return http.ListenAndServe(listen, srv.Router())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (defaults to the configured one)")

	return cmd
}

func newRemindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run one reminder sweep now",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Reminder == nil {
				return fmt.Errorf("reminders are not configured (set the traQ token)")
			}
			return app.Reminder.RunOnce(cmd.Context())
		},
	}
}
