// Package cmd holds the root command of the inbox binary and the runtime
// setup shared by every subcommand.
package cmd

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/config"
	"github.com/cristianoliveira/inbox/internal/logging"
	"github.com/cristianoliveira/inbox/internal/version"
	"github.com/spf13/cobra"
)

var debugFlag bool

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "inbox",
	Short:         "A notification inbox for the terminal.",
	Long:          `A notification inbox for the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return InitRuntime()
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// InitRuntime loads configuration and starts logging. Logging failures are
// reported but never stop the command.
func InitRuntime() error {
	config.Load()
	if debugFlag {
		config.Set("debug", "true")
	}
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
	return nil
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print debug output and log at debug level")

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), helpText(cmd))
	})
}

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{
	"list",
	"status",
	"add",
	"import",
	"export",
	"mark-read",
	"open",
	"mark-all-read",
	"clear",
	"restore",
	"tui",
	"help",
	"version",
}

func helpText(cmd *cobra.Command) string {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-18s %s", found.Use, found.Short))
	}

	return fmt.Sprintf(`inbox v%s

A notification inbox for the terminal.

USAGE:
    inbox [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --debug         Print debug output
    -h, --help      Show help message
`, version.String(), strings.Join(cmdLines, "\n"))
}
