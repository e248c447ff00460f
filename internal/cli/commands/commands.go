package commands

import (
	"fmt"
	"log/slog"

	"vtp/internal/config"
	"vtp/internal/discovery"

	"github.com/spf13/cobra"
)

// Words recognized only as the first argument
const (
	listWord    = "list"
	helpWord    = "help"
	versionWord = "version"
)

// RootLong is the root command's help text
const RootLong = `Run every test program in the test directory through the VM toolchain, one at a time.

Skipping:
  -s name...      skip these base names; the run ends at the next token starting with '-'
  --skip name...  same as -s
  -s=name         skip one name, which may itself start with '-'
Any other token is ignored. -s may be repeated.

Commands (first argument only):
  list     print the test programs that would run, honoring -s
  help     show this help
  version  print the version

Environment (a .env file in the working directory is read if present):
  VTP_TEST_DIR   test directory (default tests)
  VTP_PATTERN    file name glob (default *.v)
  VTP_TOOLCHAIN  toolchain command, split on whitespace (default "cargo run -q")
  VTP_DEBUG      enable debug logging on stderr`

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *slog.Logger) *Commands {
	scanner := discovery.NewScanner(cfg.Pattern, logger)

	return &Commands{
		Run:  NewRunCommand(cfg, scanner, logger),
		List: NewListCommand(cfg, scanner),
	}
}

// Register registers all commands with cobra.
//
// The root command has no cobra subcommands and flag parsing is disabled, so
// cobra never routes on or rejects a token: the raw arguments reach Dispatch,
// which only looks at the first one. Everything else goes to
// cli.ParseSkipArgs.
func (c *Commands) Register(rootCmd *cobra.Command) {
	rootCmd.RunE = c.Dispatch
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.DisableFlagParsing = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// Dispatch picks list, help or version when it is the first argument and
// runs the harness otherwise.
func (c *Commands) Dispatch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return c.Run.Execute(cmd, args)
	}

	switch args[0] {
	case listWord:
		return c.List.Execute(cmd, args[1:])
	case helpWord:
		return cmd.Help()
	case versionWord:
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), cmd.Version)
		return nil
	default:
		return c.Run.Execute(cmd, args)
	}
}
