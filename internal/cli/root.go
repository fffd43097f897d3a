package cli

import (
	"log/slog"

	"github.com/alexanderramin/stagehand/internal/config"
	"github.com/alexanderramin/stagehand/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Events       service.EventService
	DefaultTasks service.DefaultTaskService
	Holdings     service.HoldingService
	HoldingTasks service.HoldingTaskService
	Channels     service.ChannelDirectory
	Reminder     *service.ReminderService

	Config *config.Config
	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal; interactive
	// wizards and pickers are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "stagehand" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "stagehand",
		Short: "Recurring event checklists with chat reminders",
	}

	root.AddCommand(
		newServeCmd(app),
		newEventCmd(app),
		newHoldingCmd(app),
		newTaskCmd(app),
		newChannelCmd(app),
		newRemindCmd(app),
		newSeedCmd(app),
	)

	return root
}
