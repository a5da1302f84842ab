package main

import (
	"fmt"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/config"
	"github.com/cristianoliveira/inbox/internal/format"
	"github.com/cristianoliveira/inbox/internal/presenter"
	"github.com/cristianoliveira/inbox/internal/store"
	"github.com/cristianoliveira/inbox/internal/tui/app"
	"github.com/cristianoliveira/inbox/internal/tui/state"
	"github.com/spf13/cobra"
)

type sessionClient interface {
	Session() (*presenter.Presenter, *store.Store, error)
}

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client sessionClient, tuiClient app.Client) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}
	if tuiClient == nil {
		panic("NewTUICmd: tui client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Browse notifications interactively",
		Long: `Browse notifications interactively.

KEYS:
    j/k         Move selection
    enter       Open the selected notification
    r           Mark the selected notification as read
    R           Mark all as read
    C           Clear all
    u           Toggle unread only
    /           Search
    q           Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, s, err := client.Session()
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			model := tuiClient.CreateModel(p, s, state.Options{
				DateLayout: config.Get("date_format", format.DefaultDateFormat),
			})
			if err := tuiClient.RunProgram(model); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}

var tuiCmd = NewTUICmd(client, app.NewDefaultClient(nil))

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
}
