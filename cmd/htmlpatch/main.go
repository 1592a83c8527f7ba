// Package main provides the htmlpatch CLI: guarded check/apply patching of a
// single static HTML file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/htmlpatch/internal/patch"
	"github.com/jonathan/htmlpatch/internal/report"
)

var (
	configPath string
	jsonOutput bool
	verbose    bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "htmlpatch",
		Short: "Guarded HTML patching operations",
		Long: "htmlpatch applies idempotent, precondition-guarded edits to one static HTML file.\n" +
			"Every operation runs as `htmlpatch <operation> check <file>` or with its apply verb.\n\n" +
			"Exit codes: 0 success, 1 not found, 2 ambiguous, 3 processing error.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (default $HTMLPATCH_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the summary as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print match tracing to stderr")

	for _, cmd := range newOperationCmds() {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	configPath, jsonOutput, verbose = "", false, false

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return report.ExitOK
	}

	var exitErr *patch.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	_, _ = fmt.Fprintln(stderr, report.ErrorLine("", err))
	return report.ExitProcessing
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
