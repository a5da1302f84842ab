package main

import (
	"fmt"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/config"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/format"
	"github.com/cristianoliveira/inbox/internal/presenter"
	"github.com/spf13/cobra"
)

type listClient interface {
	View(filter domain.Filter) (presenter.View, error)
	Snapshot() ([]domain.Notification, error)
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client listClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var (
		all        bool
		formatName string
		cluster    string
		readFilter string
		search     string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		Long: `List notifications.

USAGE:
    inbox list [OPTIONS]

OPTIONS:
    --all               Show every record, deleted ones included, with its state
    --format FORMAT     Output format: table, simple, compact, json (default: table)
    --cluster NAME      Only show notifications from this cluster
    --filter STATE      Only show read or unread notifications
    --search TEXT       Only show notifications whose message contains TEXT
    -h, --help          Show this help`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dateFormat := config.Get("date_format", format.DefaultDateFormat)

			if all {
				records, err := client.Snapshot()
				if err != nil {
					return fmt.Errorf("list: %w", err)
				}
				return format.FormatRecords(cmd.OutOrStdout(), records, dateFormat)
			}

			if !format.IsValidType(formatName) {
				return fmt.Errorf("list: unknown format %q", formatName)
			}
			filter, err := domain.FilterOptions{Cluster: cluster, ReadFilter: readFilter, Query: search}.ToFilter()
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			view, err := client.View(filter)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			formatter := format.NewFormatter(format.FormatterType(formatName), format.Options{DateFormat: dateFormat})
			return formatter.FormatView(view, cmd.OutOrStdout())
		},
	}

	listCmd.Flags().BoolVar(&all, "all", false, "Show every record with its state")
	listCmd.Flags().StringVar(&formatName, "format", string(format.FormatterTypeTable), "Output format")
	listCmd.Flags().StringVar(&cluster, "cluster", "", "Filter by cluster")
	listCmd.Flags().StringVar(&readFilter, "filter", "", "Filter by read state (read|unread)")
	listCmd.Flags().StringVar(&search, "search", "", "Filter by message text")

	return listCmd
}

var listCmd = NewListCmd(client)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}
