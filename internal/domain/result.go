package domain

import "time"

// Outcome classifies a single toolchain invocation
type Outcome int

const (
	// Passed means the toolchain exited with status 0
	Passed Outcome = iota
	// Failed means a non-zero exit status or termination by a signal
	Failed
	// ToolchainMissing means the toolchain could not be started at all
	ToolchainMissing
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case ToolchainMissing:
		return "toolchain missing"
	default:
		return "unknown"
	}
}

// TestResult represents the result of running one test program
type TestResult struct {
	File     TestFile
	Outcome  Outcome
	ExitCode int           // -1 when the process never ran or was killed by a signal
	Duration time.Duration // Time taken to execute
	Err      error         // Error from starting or waiting on the process
}

// Success reports whether the toolchain exited cleanly
func (r TestResult) Success() bool {
	return r.Outcome == Passed
}

// Tally counts results by outcome
type Tally struct {
	Passed           int
	Failed           int
	ToolchainMissing int
}

// Count returns the tally for results
func Count(results []TestResult) Tally {
	var t Tally
	for _, r := range results {
		switch r.Outcome {
		case Passed:
			t.Passed++
		case Failed:
			t.Failed++
		case ToolchainMissing:
			t.ToolchainMissing++
		}
	}
	return t
}

// Total is the number of invoked test programs
func (t Tally) Total() int {
	return t.Passed + t.Failed + t.ToolchainMissing
}

// OK reports whether every invoked test program passed
func (t Tally) OK() bool {
	return t.Failed == 0 && t.ToolchainMissing == 0
}
