package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/spf13/cobra"
)

// newSeedCmd loads a small sample data set: one event with a three-task
// template and one upcoming holding cloned from it. Useful for trying the
// CLI and the API against something non-empty.
func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample data for trying things out",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			event := &domain.Event{Name: "Game Exhibition"}
			if err := app.Events.Create(ctx, event); err != nil {
				return err
			}

			templates := []*domain.DefaultTask{
				{EventID: event.ID, Name: "Book the venue", DaysBefore: 90},
				{EventID: event.ID, Name: "Announce the date", DaysBefore: 30, Description: "post in the event channel"},
				{EventID: event.ID, Name: "Print the handouts", DaysBefore: 7},
			}
			for _, t := range templates {
				if err := app.DefaultTasks.Create(ctx, t); err != nil {
					return err
				}
			}

			holding := &domain.Holding{
				EventID:   &event.ID,
				Name:      fmt.Sprintf("Game Exhibition %d", time.Now().Year()),
				Date:      time.Now().AddDate(0, 2, 0),
				ChannelID: "seed-channel",
				Mention:   "@staff",
			}
			tasks, err := app.Holdings.CreateWithTasks(ctx, holding)
			if err != nil {
				return err
			}

			fmt.Printf("Seeded event %q with %d template tasks and holding %q with %d cloned tasks.\n",
				event.Name, len(templates), holding.Name, len(tasks))
			return nil
		},
	}
}
