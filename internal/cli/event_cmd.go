package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage recurring events and their task templates",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventInspectCmd(app),
		newEventUpdateCmd(app),
		newEventRemoveCmd(app),
		newEventTaskCmd(app),
	)

	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new event",
		RunE: func(cmd *cobra.Command, args []string) error {
			event := &domain.Event{Name: name}
			if err := app.Events.Create(context.Background(), event); err != nil {
				return err
			}
			fmt.Printf("Created event %s [%s]\n", event.Name, formatter.ShortID(event.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Event name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [QUERY]",
		Short: "List events, optionally filtered by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			events, err := app.Events.List(context.Background(), query)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("No events found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatEventList(events))
			return nil
		},
	}
}

func newEventInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect EVENT",
		Short: "Show an event and its task template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			event, err := app.Events.GetByID(ctx, eventID)
			if err != nil {
				return err
			}
			tasks, err := app.DefaultTasks.ListByEvent(ctx, eventID)
			if err != nil {
				return err
			}

			fmt.Printf("%s  %s\n\n", formatter.Bold(event.Name), formatter.Dim(formatter.ShortID(event.ID)))
			if len(tasks) == 0 {
				fmt.Println("No template tasks.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatDefaultTaskList(tasks))
			return nil
		},
	}
}

func newEventUpdateCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update EVENT",
		Short: "Rename an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			event, err := app.Events.GetByID(ctx, eventID)
			if err != nil {
				return err
			}
			event.Name = name
			if err := app.Events.Update(ctx, event); err != nil {
				return err
			}
			fmt.Printf("Updated event %s\n", event.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New event name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove EVENT",
		Short: "Remove an event and its task template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Events.Delete(ctx, eventID); err != nil {
				return err
			}
			fmt.Printf("Removed event %s\n", formatter.ShortID(eventID))
			return nil
		},
	}
}

func newEventTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage an event's template tasks",
	}

	cmd.AddCommand(
		newEventTaskAddCmd(app),
		newEventTaskListCmd(app),
		newEventTaskUpdateCmd(app),
		newEventTaskRemoveCmd(app),
	)

	return cmd
}

func newEventTaskAddCmd(app *App) *cobra.Command {
	var name, description string
	var daysBefore int

	cmd := &cobra.Command{
		Use:   "add EVENT",
		Short: "Add a template task to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}

			task := &domain.DefaultTask{
				EventID:     eventID,
				Name:        name,
				DaysBefore:  daysBefore,
				Description: description,
			}
			if err := app.DefaultTasks.Create(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Added template task %s (%dd before)\n", task.Name, task.DaysBefore)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().IntVar(&daysBefore, "days-before", 7, "Lead time in days before the holding date (at least 1)")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEventTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list EVENT",
		Short: "List an event's template tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			tasks, err := app.DefaultTasks.ListByEvent(ctx, eventID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No template tasks.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatDefaultTaskList(tasks))
			return nil
		},
	}
}

func newEventTaskUpdateCmd(app *App) *cobra.Command {
	var name, description string
	var daysBefore int

	cmd := &cobra.Command{
		Use:   "update TASK_ID",
		Short: "Update a template task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := app.DefaultTasks.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				task.Name = name
			}
			if cmd.Flags().Changed("days-before") {
				task.DaysBefore = daysBefore
			}
			if cmd.Flags().Changed("description") {
				task.Description = description
			}

			if err := app.DefaultTasks.Update(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Updated template task %s\n", task.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().IntVar(&daysBefore, "days-before", 0, "Lead time in days before the holding date")
	cmd.Flags().StringVar(&description, "description", "", "Task description")

	return cmd
}

func newEventTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove TASK_ID",
		Short: "Remove a template task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.DefaultTasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed template task %s\n", formatter.ShortID(args[0]))
			return nil
		},
	}
}
