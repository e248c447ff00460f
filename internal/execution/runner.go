package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"vtp/internal/config"
	"vtp/internal/domain"
)

// Runner invokes the toolchain for a single test program
type Runner struct {
	config *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewRunner creates a new Runner. The child's streams are attached to the
// given reader and writers as-is; nothing is buffered or captured.
func NewRunner(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		config: cfg,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Run executes the toolchain with the test program path as its last argument
// and blocks until it exits.
func (r *Runner) Run(ctx context.Context, file domain.TestFile) domain.TestResult {
	argv := r.config.Toolchain(file.Path)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	result := domain.TestResult{File: file, ExitCode: -1}
	start := time.Now()

	if err := cmd.Start(); err != nil {
		result.Duration = time.Since(start)
		if ctx.Err() != nil {
			result.Outcome = domain.Failed
			result.Err = ctx.Err()
			return result
		}
		result.Outcome = domain.ToolchainMissing
		result.Err = fmt.Errorf("start %s: %w", argv[0], err)
		r.logger.Debug("toolchain did not start", "file", file.Path, "error", err)
		return result
	}

	err := cmd.Wait()
	result.Duration = time.Since(start)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.Outcome = domain.Passed
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.Outcome = domain.Failed
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
	default:
		result.Outcome = domain.Failed
		result.Err = fmt.Errorf("wait %s: %w", argv[0], err)
	}

	r.logger.Debug("toolchain exited",
		"file", file.Path,
		"outcome", result.Outcome.String(),
		"exit_code", result.ExitCode,
		"duration", result.Duration,
	)
	return result
}
