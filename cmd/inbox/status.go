package main

import (
	"fmt"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/format"
	"github.com/spf13/cobra"
)

type statusClient interface {
	Snapshot() ([]domain.Notification, error)
}

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(client statusClient) *cobra.Command {
	if client == nil {
		panic("NewStatusCmd: client dependency cannot be nil")
	}

	var formatName string

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show notification counts",
		Long: `Show notification counts per cluster.

USAGE:
    inbox status [OPTIONS]

OPTIONS:
    --format FORMAT     Output format: summary, json (default: summary)
    -h, --help          Show this help`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := client.Snapshot()
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}
			data := format.Summarize(records)
			switch formatName {
			case "summary":
				return format.FormatSummary(cmd.OutOrStdout(), data)
			case "json":
				return format.FormatJSON(cmd.OutOrStdout(), data)
			default:
				return fmt.Errorf("status: unknown format %q", formatName)
			}
		},
	}

	statusCmd.Flags().StringVar(&formatName, "format", "summary", "Output format (summary|json)")

	return statusCmd
}

var statusCmd = NewStatusCmd(client)

func init() {
	cmd.RootCmd.AddCommand(statusCmd)
}
