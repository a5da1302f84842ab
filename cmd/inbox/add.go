package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/spf13/cobra"
)

type addClient interface {
	Add(message, cluster, url string, date time.Time) (domain.Notification, error)
}

// NewAddCmd creates the add command with explicit dependencies.
func NewAddCmd(client addClient) *cobra.Command {
	if client == nil {
		panic("NewAddCmd: client dependency cannot be nil")
	}

	var (
		cluster string
		url     string
		date    string
	)

	addCmd := &cobra.Command{
		Use:   "add <message>",
		Short: "Add a new notification",
		Long: `Add a new notification to the inbox.

USAGE:
    inbox add [OPTIONS] <message>

OPTIONS:
    --cluster NAME      Origin label shown in the cluster column
    --url URL           Target opened when the notification is activated
    --date TIME         Event time in RFC3339 (default: now)
    -h, --help          Show this help`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var when time.Time
			if date != "" {
				parsed, err := time.Parse(time.RFC3339, date)
				if err != nil {
					return fmt.Errorf("add: invalid --date: %w", err)
				}
				when = parsed
			}

			message := strings.Join(args, " ")
			n, err := client.Add(message, cluster, url, when)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			colors.Success(fmt.Sprintf("added notification %s", n.ID))
			return nil
		},
	}

	addCmd.Flags().StringVar(&cluster, "cluster", "", "Cluster the notification belongs to")
	addCmd.Flags().StringVar(&url, "url", "", "Navigation target")
	addCmd.Flags().StringVar(&date, "date", "", "Event time (RFC3339)")

	return addCmd
}

var addCmd = NewAddCmd(client)

func init() {
	cmd.RootCmd.AddCommand(addCmd)
}
