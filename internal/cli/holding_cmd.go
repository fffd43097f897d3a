package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/match"
	"github.com/spf13/cobra"
)

func newHoldingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holding",
		Short: "Manage dated holdings of events",
	}

	cmd.AddCommand(
		newHoldingAddCmd(app),
		newHoldingListCmd(app),
		newHoldingInspectCmd(app),
		newHoldingUpdateCmd(app),
		newHoldingRemoveCmd(app),
	)

	return cmd
}

func newHoldingAddCmd(app *App) *cobra.Command {
	var name, date, channelID, mention, eventRef string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a holding, cloning its event's task template",
		Long: "Create a holding. With --event, the event's template tasks are copied\n" +
			"into the new holding as its starting checklist. In a terminal, missing\n" +
			"details are collected interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if app.interactive() && (name == "" || date == "" || mention == "") {
				values := holdingWizardValues{Name: name, Date: date, Mention: mention}
				if err := runHoldingWizard(&values); err != nil {
					return err
				}
				name, date, mention = values.Name, values.Date, values.Mention
			}

			if eventRef == "" && app.interactive() {
				events, err := app.Events.List(ctx, "")
				if err != nil {
					return err
				}
				if len(events) > 0 {
					options := make([]match.Option, 0, len(events)+1)
					options = append(options, match.Option{Value: "", Label: "(no event)"})
					for _, e := range events {
						options = append(options, match.Option{Value: e.ID, Label: e.Name})
					}
					chosen, err := pickOption("Which event is this a holding of?", options)
					if err != nil {
						return err
					}
					eventRef = chosen.Value
				}
			}

			if channelID == "" && app.interactive() {
				channels, err := app.Channels.List(ctx)
				if err != nil {
					return fmt.Errorf("listing channels: %w", err)
				}
				options := make([]match.Option, len(channels))
				for i, c := range channels {
					options[i] = match.Option{Value: c.ID, Label: c.Name}
				}
				chosen, err := pickOption("Which channel?", options)
				if err != nil {
					return err
				}
				channelID = chosen.Value
			}

			holdingDate, err := time.Parse(time.DateOnly, date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			holding := &domain.Holding{
				Name:      name,
				Date:      holdingDate,
				ChannelID: channelID,
				Mention:   mention,
			}
			if eventRef != "" {
				eventID, err := resolveEventID(ctx, app, eventRef)
				if err != nil {
					return err
				}
				holding.EventID = &eventID
			}

			tasks, err := app.Holdings.CreateWithTasks(ctx, holding)
			if err != nil {
				return err
			}

			fmt.Printf("Created holding %s [%s] on %s\n", holding.Name, formatter.ShortID(holding.ID), date)
			if len(tasks) > 0 {
				fmt.Printf("Cloned %d tasks from the event template.\n", len(tasks))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Holding name")
	cmd.Flags().StringVar(&date, "date", "", "Holding date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&channelID, "channel", "", "Chat channel ID for reminders")
	cmd.Flags().StringVar(&mention, "mention", "", "Who to tag in reminders, e.g. @staff")
	cmd.Flags().StringVar(&eventRef, "event", "", "Origin event (name, UUID, or UUID prefix)")

	return cmd
}

func newHoldingListCmd(app *App) *cobra.Command {
	var eventRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List holdings, upcoming first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var holdings []*domain.Holding
			var err error
			if eventRef != "" {
				eventID, rerr := resolveEventID(ctx, app, eventRef)
				if rerr != nil {
					return rerr
				}
				holdings, err = app.Holdings.ListByEvent(ctx, eventID)
			} else {
				holdings, err = app.Holdings.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(holdings) == 0 {
				fmt.Println("No holdings found.")
				return nil
			}

			events, err := app.Events.List(ctx, "")
			if err != nil {
				return err
			}
			eventNames := make(map[string]string, len(events))
			for _, e := range events {
				eventNames[e.ID] = e.Name
			}

			fmt.Printf("%s\n", formatter.FormatHoldingList(holdings, eventNames, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&eventRef, "event", "", "Only holdings of this event")

	return cmd
}

func newHoldingInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect HOLDING",
		Short: "Show a holding and its task checklist",
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

			fmt.Printf("%s\n", formatter.FormatHoldingInspect(holding, tasks, time.Now()))
			return nil
		},
	}
}

func newHoldingUpdateCmd(app *App) *cobra.Command {
	var name, date, channelID, mention string

	cmd := &cobra.Command{
		Use:   "update HOLDING",
		Short: "Update a holding",
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

			if cmd.Flags().Changed("name") {
				holding.Name = name
			}
			if cmd.Flags().Changed("date") {
				holdingDate, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				holding.Date = holdingDate
			}
			if cmd.Flags().Changed("channel") {
				holding.ChannelID = channelID
			}
			if cmd.Flags().Changed("mention") {
				holding.Mention = mention
			}

			if err := app.Holdings.Update(ctx, holding); err != nil {
				return err
			}
			fmt.Printf("Updated holding %s\n", holding.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Holding name")
	cmd.Flags().StringVar(&date, "date", "", "Holding date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&channelID, "channel", "", "Chat channel ID for reminders")
	cmd.Flags().StringVar(&mention, "mention", "", "Who to tag in reminders")

	return cmd
}

func newHoldingRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove HOLDING",
		Short: "Remove a holding and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			holdingID, err := resolveHoldingID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Holdings.Delete(ctx, holdingID); err != nil {
				return err
			}
			fmt.Printf("Removed holding %s\n", formatter.ShortID(holdingID))
			return nil
		},
	}
}
