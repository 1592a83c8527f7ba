package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/htmlpatch/internal/config"
	"github.com/jonathan/htmlpatch/internal/operations"
	"github.com/jonathan/htmlpatch/internal/patch"
	"github.com/jonathan/htmlpatch/internal/report"
)

// newOperationCmds creates one subcommand per registered operation. The
// command tree only needs names and verbs, so it is built from the default
// config; the real config is resolved when a command runs.
func newOperationCmds() []*cobra.Command {
	registry, err := operations.New(config.Default())
	if err != nil {
		panic(fmt.Sprintf("failed to build operation registry: %v", err))
	}

	cmds := make([]*cobra.Command, 0)
	for _, op := range registry.All() {
		name := op.Name
		cmds = append(cmds, &cobra.Command{
			Use:       fmt.Sprintf("%s <check|%s> <file>", name, op.Verb),
			Short:     op.Description,
			Long:      fmt.Sprintf("%s.\n\ncheck reports the match counts; %s edits the file in place.", op.Description, op.Verb),
			Args:      cobra.ExactArgs(2),
			ValidArgs: []string{"check", op.Verb},
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, name, args[0], args[1])
			},
		})
	}
	return cmds
}

func runOperation(cmd *cobra.Command, name, modeArg, path string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}

	registry, err := operations.New(cfg)
	if err != nil {
		return err
	}

	op, ok := registry.Get(name)
	if !ok {
		return fmt.Errorf("unknown operation %q", name)
	}

	mode, err := op.ParseMode(modeArg)
	if err != nil {
		return err
	}

	runner := patch.NewRunner()
	runner.Out, runner.Err = cmd.OutOrStdout(), cmd.ErrOrStderr()
	runner.JSON = jsonOutput || cfg.JSON
	runner.Verbose = verbose || cfg.Verbose

	if code := runner.Execute(op, mode, path); code != report.ExitOK {
		return &patch.ExitError{Code: code}
	}
	return nil
}
