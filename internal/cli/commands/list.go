package commands

import (
	"vtp/internal/cli"
	"vtp/internal/config"
	"vtp/internal/discovery"
	"vtp/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, scanner *discovery.Scanner) *ListCommand {
	return &ListCommand{
		config:  cfg,
		scanner: scanner,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	files := lc.scanner.Scan(lc.config.TestDir)

	// Filter tests
	kept := discovery.NewFilter(cli.ParseSkipArgs(args)).Apply(files)

	ui.NewReporter(cmd.OutOrStdout()).PrintTestList(kept, len(files)-len(kept))
	return nil
}
