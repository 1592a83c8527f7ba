package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/htmlpatch/internal/config"
	"github.com/jonathan/htmlpatch/internal/operations"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := operations.New(config.Default())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, op := range registry.All() {
				_, _ = fmt.Fprintf(out, "%-36s %-8s %s\n", op.Name, op.Verb, op.Description)
			}
			return nil
		},
	}
}
