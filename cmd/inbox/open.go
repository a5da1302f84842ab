package main

import (
	"fmt"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/spf13/cobra"
)

type openClient interface {
	lookupClient
	Activate(id string) error
}

// NewOpenCmd creates the open command with explicit dependencies.
func NewOpenCmd(client openClient) *cobra.Command {
	if client == nil {
		panic("NewOpenCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open a notification and mark it read",
		Long: `Navigate to a notification's URL through the configured router and mark
it as read. Notifications without a URL are only marked as read.

USAGE:
    inbox open <id>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			n, err := lookup(client, "open", id)
			if err != nil {
				return err
			}
			if err := client.Activate(id); err != nil {
				return fmt.Errorf("open: %w", err)
			}
			if !n.HasURL() {
				colors.Info(fmt.Sprintf("notification %s has no URL; marked as read", id))
			}
			return nil
		},
	}
}

var openCmd = NewOpenCmd(client)

func init() {
	cmd.RootCmd.AddCommand(openCmd)
}
