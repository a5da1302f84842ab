package main

import (
	"fmt"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/presenter"
	"github.com/spf13/cobra"
)

type markAllReadClient interface {
	View(filter domain.Filter) (presenter.View, error)
	MarkAllRead() error
}

// NewMarkAllReadCmd creates the mark-all-read command with explicit dependencies.
func NewMarkAllReadCmd(client markAllReadClient) *cobra.Command {
	if client == nil {
		panic("NewMarkAllReadCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "mark-all-read",
		Short: "Mark every notification as read",
		Long: `Mark every notification as read, cleared ones included.

USAGE:
    inbox mark-all-read`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := client.View(domain.Filter{})
			if err != nil {
				return fmt.Errorf("mark-all-read: %w", err)
			}
			if !view.CanMarkAllRead() {
				colors.Info("nothing to mark as read")
				return nil
			}
			if err := client.MarkAllRead(); err != nil {
				return fmt.Errorf("mark-all-read: %w", err)
			}
			colors.Success("all notifications marked as read")
			return nil
		},
	}
}

var markAllReadCmd = NewMarkAllReadCmd(client)

func init() {
	cmd.RootCmd.AddCommand(markAllReadCmd)
}
