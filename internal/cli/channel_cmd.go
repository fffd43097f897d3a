package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/match"
	"github.com/spf13/cobra"
)

func newChannelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Browse the chat service's channels",
	}

	cmd.AddCommand(newChannelListCmd(app))

	return cmd
}

func newChannelListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [QUERY]",
		Short: "List channels, best matches first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			channels, err := app.Channels.List(context.Background())
			if err != nil {
				return err
			}

			if len(args) > 0 {
				options := make([]match.Option, len(channels))
				for i, c := range channels {
					options[i] = match.Option{Value: c.ID, Label: c.Name}
				}
				ranked := match.Rank(args[0], options)
				channels = make([]domain.Channel, len(ranked))
				for i, opt := range ranked {
					channels[i] = domain.Channel{ID: opt.Value, Name: opt.Label}
				}
			}

			if len(channels) == 0 {
				fmt.Println("No channels found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatChannelList(channels))
			return nil
		},
	}
}
