package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"vtp/internal/cli/commands"
	"vtp/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration from .env and the environment
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Create root command
	rootCmd := &cobra.Command{
		Use:     "vtp [-s name...]...",
		Short:   "Sequential VM test-program runner",
		Long:    commands.RootLong,
		Version: version,
	}

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, logger)

	// Register all commands
	cmds.Register(rootCmd)

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		switch {
		case errors.Is(err, commands.ErrTestsFailed):
			return 1
		case errors.Is(err, context.Canceled):
			return 130
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}
