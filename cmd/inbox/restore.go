package main

import (
	"fmt"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/spf13/cobra"
)

type restoreClient interface {
	lookupClient
	Restore(id string) error
}

// NewRestoreCmd creates the restore command with explicit dependencies.
func NewRestoreCmd(client restoreClient) *cobra.Command {
	if client == nil {
		panic("NewRestoreCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Bring back a cleared notification",
		Long: `Bring back a cleared notification. Its read state is kept.

USAGE:
    inbox restore <id>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			n, err := lookup(client, "restore", id)
			if err != nil {
				return err
			}
			if !n.Deleted {
				colors.Info(fmt.Sprintf("notification %s is not cleared", id))
				return nil
			}
			if err := client.Restore(id); err != nil {
				return fmt.Errorf("restore: %w", err)
			}
			colors.Success(fmt.Sprintf("notification %s restored", id))
			return nil
		},
	}
}

var restoreCmd = NewRestoreCmd(client)

func init() {
	cmd.RootCmd.AddCommand(restoreCmd)
}
