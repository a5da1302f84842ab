package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/config"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/presenter"
	"github.com/spf13/cobra"
)

type clearClient interface {
	View(filter domain.Filter) (presenter.View, error)
	ClearAll() error
}

// ConfirmFunc asks the user to confirm an action.
type ConfirmFunc func(title, description string) (bool, error)

// confirmPrompt shows a yes/no form on the terminal.
func confirmPrompt(title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes, clear").
				Negative("Cancel").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// NewClearCmd creates the clear command with explicit dependencies.
func NewClearCmd(client clearClient, confirm ConfirmFunc) *cobra.Command {
	if client == nil {
		panic("NewClearCmd: client dependency cannot be nil")
	}
	if confirm == nil {
		panic("NewClearCmd: confirm dependency cannot be nil")
	}

	var yes bool

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all notifications",
		Long: `Clear all notifications. Cleared notifications are hidden from the list
but kept in storage; use restore to bring one back.

USAGE:
    inbox clear [OPTIONS]

OPTIONS:
    -y, --yes       Skip the confirmation prompt
    -h, --help      Show this help`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := client.View(domain.Filter{})
			if err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			if !view.CanClearAll() {
				colors.Info("nothing to clear")
				return nil
			}

			if !yes && config.GetBool("confirm_clear", true) {
				ok, err := confirm(view.Labels.ClearAll+"?", fmt.Sprintf("%d notifications will be hidden.", len(view.Rows)))
				if err != nil {
					return fmt.Errorf("clear: %w", err)
				}
				if !ok {
					colors.Info("operation cancelled")
					return nil
				}
			}

			if err := client.ClearAll(); err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			colors.Success("all notifications cleared")
			return nil
		},
	}

	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return clearCmd
}

var clearCmd = NewClearCmd(client, confirmPrompt)

func init() {
	cmd.RootCmd.AddCommand(clearCmd)
}
