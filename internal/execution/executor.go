package execution

import (
	"context"
	"time"

	"vtp/internal/domain"
)

// Executor executes test programs and returns results
type Executor interface {
	Execute(ctx context.Context, files []domain.TestFile) ([]domain.TestResult, time.Duration, error)
}

// TestRunner runs a single test program
type TestRunner interface {
	Run(ctx context.Context, file domain.TestFile) domain.TestResult
}

// Reporter announces progress on the console
type Reporter interface {
	Banner(file domain.TestFile)
	Complete()
}
