package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage a holding's checklist tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, description string
	var daysBefore int

	cmd := &cobra.Command{
		Use:   "add HOLDING",
		Short: "Add a task to a holding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			holdingID, err := resolveHoldingID(ctx, app, args[0])
			if err != nil {
				return err
			}

			task := &domain.HoldingTask{
				HoldingID:   holdingID,
				Name:        name,
				DaysBefore:  daysBefore,
				Description: description,
			}
			if err := app.HoldingTasks.Create(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Added task %s (%dd before)\n", task.Name, task.DaysBefore)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().IntVar(&daysBefore, "days-before", 0, "Lead time in days before the holding date")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list HOLDING",
		Short: "List a holding's tasks with due dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			holdingID, err := resolveHoldingID(ctx, app, args[0])
			if err != nil {
				return err
			}
			holding, err := app.Holdings.GetByID(ctx, holdingID)
			if err != nil {
				return err
			}
			tasks, err := app.HoldingTasks.ListByHolding(ctx, holdingID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks.")
				return nil
			}

			rows := make([][]string, len(tasks))
			for i, t := range tasks {
				rows[i] = []string{
					formatter.Dim(formatter.ShortID(t.ID)),
					t.Name,
					t.DueDate(holding.Date).Format("2006-01-02"),
				}
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "TASK", "DUE"}, rows))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, description string
	var daysBefore int

	cmd := &cobra.Command{
		Use:   "update TASK_ID",
		Short: "Update a holding task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := app.HoldingTasks.GetByID(ctx, args[0])
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

			if err := app.HoldingTasks.Update(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", task.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().IntVar(&daysBefore, "days-before", 0, "Lead time in days before the holding date")
	cmd.Flags().StringVar(&description, "description", "", "Task description")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove TASK_ID",
		Short: "Remove a holding task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.HoldingTasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", formatter.ShortID(args[0]))
			return nil
		},
	}
}
