package execution

import (
	"context"
	"log/slog"
	"time"

	"vtp/internal/discovery"
	"vtp/internal/domain"
)

// Sequencer runs test programs one at a time in discovery order
type Sequencer struct {
	runner   TestRunner
	filter   *discovery.Filter
	reporter Reporter
	logger   *slog.Logger
}

// NewSequencer creates a new Sequencer
func NewSequencer(runner TestRunner, filter *discovery.Filter, reporter Reporter, logger *slog.Logger) *Sequencer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sequencer{
		runner:   runner,
		filter:   filter,
		reporter: reporter,
		logger:   logger,
	}
}

// Execute runs every file the filter keeps. A failing file does not stop the
// loop. The completion message is printed once all files have been
// considered; if ctx is cancelled the loop stops before the next file and
// ctx's error is returned along with the results gathered so far.
func (s *Sequencer) Execute(ctx context.Context, files []domain.TestFile) ([]domain.TestResult, time.Duration, error) {
	startTime := time.Now()
	var results []domain.TestResult

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, time.Since(startTime), err
		}

		if s.filter.Skip(file) {
			s.logger.Debug("skipping test program", "file", file.Path)
			continue
		}

		s.reporter.Banner(file)
		results = append(results, s.runner.Run(ctx, file))
	}

	if err := ctx.Err(); err != nil {
		return results, time.Since(startTime), err
	}

	s.reporter.Complete()
	return results, time.Since(startTime), nil
}
