package main

import (
	"fmt"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/spf13/cobra"
)

type lookupClient interface {
	Lookup(id string) (domain.Notification, bool, error)
}

type markReadClient interface {
	lookupClient
	ToggleSeen(id string) error
}

// lookup resolves id or returns a not found error prefixed with op.
func lookup(client lookupClient, op, id string) (domain.Notification, error) {
	n, ok, err := client.Lookup(id)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return domain.Notification{}, fmt.Errorf("%s: notification %s not found", op, id)
	}
	return n, nil
}

// NewMarkReadCmd creates the mark-read command with explicit dependencies.
func NewMarkReadCmd(client markReadClient) *cobra.Command {
	if client == nil {
		panic("NewMarkReadCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "mark-read <id>",
		Short: "Mark a notification as read",
		Long: `Mark a notification as read.

USAGE:
    inbox mark-read <id>

ARGUMENTS:
    <id>    Notification ID (as shown by list)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			n, err := lookup(client, "mark-read", id)
			if err != nil {
				return err
			}
			if n.Seen {
				colors.Info(fmt.Sprintf("notification %s is already read", id))
				return nil
			}
			if err := client.ToggleSeen(id); err != nil {
				return fmt.Errorf("mark-read: %w", err)
			}
			colors.Success(fmt.Sprintf("notification %s marked as read", id))
			return nil
		},
	}
}

var markReadCmd = NewMarkReadCmd(client)

func init() {
	cmd.RootCmd.AddCommand(markReadCmd)
}
