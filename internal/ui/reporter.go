package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"vtp/internal/domain"
)

const (
	// CompletionMessage is printed once after every file has been considered
	CompletionMessage = "All test programs processed."

	maxBannerWidth     = 80
	defaultBannerWidth = 60
)

// Reporter writes banners and summaries to the console
type Reporter struct {
	out   io.Writer
	width int
}

// NewReporter creates a new Reporter writing to out. When out is a terminal
// the banner rule follows its width, capped at 80 columns.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, width: bannerWidth(out)}
}

func bannerWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultBannerWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultBannerWidth
	}
	return min(width, maxBannerWidth)
}

// Banner announces the test program about to run
func (r *Reporter) Banner(file domain.TestFile) {
	rule := strings.Repeat("=", r.width)
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(r.out, rule)
	cyan.Fprintf(r.out, "Running %s\n", file.Path)
	cyan.Fprintln(r.out, rule)
}

// Complete prints the completion message
func (r *Reporter) Complete() {
	fmt.Fprintln(r.out)
	color.New(color.FgGreen, color.Bold).Fprintln(r.out, CompletionMessage)
}

// Summary prints per-outcome counts followed by every file that did not pass
func (r *Reporter) Summary(results []domain.TestResult, duration time.Duration) {
	tally := domain.Count(results)

	fmt.Fprintf(r.out, "%d run | ", tally.Total())
	color.New(color.FgGreen).Fprintf(r.out, "passed: %d", tally.Passed)
	fmt.Fprint(r.out, " | ")
	color.New(color.FgRed).Fprintf(r.out, "failed: %d", tally.Failed)
	fmt.Fprint(r.out, " | ")
	color.New(color.FgYellow).Fprintf(r.out, "toolchain missing: %d", tally.ToolchainMissing)
	fmt.Fprintf(r.out, " | %.2fs\n", duration.Seconds())

	if tally.OK() {
		return
	}

	red := color.New(color.FgRed)
	for _, result := range results {
		switch result.Outcome {
		case domain.Failed:
			if result.ExitCode >= 0 {
				red.Fprintf(r.out, "✗ %s (exit %d)\n", result.File.Path, result.ExitCode)
			} else {
				red.Fprintf(r.out, "✗ %s (terminated)\n", result.File.Path)
			}
		case domain.ToolchainMissing:
			color.New(color.FgYellow).Fprintf(r.out, "✗ %s (toolchain missing: %v)\n", result.File.Path, result.Err)
		}
	}
}

// PrintTestList prints the test programs that would run
func (r *Reporter) PrintTestList(files []domain.TestFile, skipped int) {
	if len(files) == 0 {
		color.New(color.FgYellow).Fprintln(r.out, "No test programs to run")
	} else {
		color.New(color.FgGreen).Fprintf(r.out, "Found %d test program(s):\n", len(files))

		cyan := color.New(color.FgCyan)
		for i, file := range files {
			if i == len(files)-1 {
				cyan.Fprintf(r.out, "└── %s\n", file.Path)
			} else {
				cyan.Fprintf(r.out, "├── %s\n", file.Path)
			}
		}
	}

	if skipped > 0 {
		color.New(color.FgYellow).Fprintf(r.out, "Skipped %d test program(s)\n", skipped)
	}
}
