package commands

import (
	"errors"
	"log/slog"

	"vtp/internal/cli"
	"vtp/internal/config"
	"vtp/internal/discovery"
	"vtp/internal/domain"
	"vtp/internal/execution"
	"vtp/internal/ui"

	"github.com/spf13/cobra"
)

// ErrTestsFailed is returned when at least one test program did not pass.
// The summary has already been printed when it is returned.
var ErrTestsFailed = errors.New("one or more test programs did not pass")

// RunCommand handles the root command
type RunCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	logger  *slog.Logger
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, scanner *discovery.Scanner, logger *slog.Logger) *RunCommand {
	return &RunCommand{
		config:  cfg,
		scanner: scanner,
		logger:  logger,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	skip := cli.ParseSkipArgs(args)
	rc.logger.Debug("parsed arguments", "skip", skip.Names())

	// Discover tests
	files := rc.scanner.Scan(rc.config.TestDir)

	reporter := ui.NewReporter(cmd.OutOrStdout())
	runner := execution.NewRunner(rc.config, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), rc.logger)
	rc.logger.Debug("resolved toolchain", "argv", rc.config.Toolchain("<file>"))

	var executor execution.Executor = execution.NewSequencer(runner, discovery.NewFilter(skip), reporter, rc.logger)
	results, duration, err := executor.Execute(cmd.Context(), files)
	if err != nil {
		return err
	}

	reporter.Summary(results, duration)
	if !domain.Count(results).OK() {
		return ErrTestsFailed
	}
	return nil
}
