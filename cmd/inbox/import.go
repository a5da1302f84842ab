package main

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/domain"
	"github.com/cristianoliveira/inbox/internal/producer"
	"github.com/spf13/cobra"
)

type importClient interface {
	Import(records []domain.Notification) error
}

type exportClient interface {
	Snapshot() ([]domain.Notification, error)
}

// NewImportCmd creates the import command with explicit dependencies.
func NewImportCmd(client importClient) *cobra.Command {
	if client == nil {
		panic("NewImportCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace notifications from a JSON file",
		Long: `Replace the whole collection with the records of a JSON file.

The file holds an array of objects with the fields id, message, cluster,
date, url, seen and deleted. Every record needs an id. Use "-" to read
from standard input.

USAGE:
    inbox import <file.json>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("import: %w", err)
				}
				defer f.Close()
				in = f
			}

			records, err := producer.ImportJSON(in)
			if err != nil {
				return err
			}
			if err := client.Import(records); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			colors.Success(fmt.Sprintf("imported %d notifications", len(records)))
			return nil
		},
	}
}

// NewExportCmd creates the export command with explicit dependencies.
func NewExportCmd(client exportClient) *cobra.Command {
	if client == nil {
		panic("NewExportCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "export",
		Short: "Write notifications as JSON",
		Long: `Write every notification, deleted ones included, as a JSON array that
import reads back.

USAGE:
    inbox export > notifications.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := client.Snapshot()
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			return producer.ExportJSON(cmd.OutOrStdout(), records)
		},
	}
}

var (
	importCmd = NewImportCmd(client)
	exportCmd = NewExportCmd(client)
)

func init() {
	cmd.RootCmd.AddCommand(importCmd)
	cmd.RootCmd.AddCommand(exportCmd)
}
