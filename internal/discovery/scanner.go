package discovery

import (
	"log/slog"
	"os"
	"path/filepath"

	"vtp/internal/domain"
)

// Scanner lists test programs in a single directory
type Scanner struct {
	pattern string
	logger  *slog.Logger
}

// NewScanner creates a new Scanner matching base names against pattern
func NewScanner(pattern string, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{pattern: pattern, logger: logger}
}

// Scan returns the test programs in dir in lexicographic order of their
// names. Subdirectories are not descended into. A missing or unreadable
// directory yields no files.
func (s *Scanner) Scan(dir string) []domain.TestFile {
	// os.ReadDir sorts entries by file name
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("test directory not readable", "dir", dir, "error", err)
		return nil
	}

	var files []domain.TestFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, err := filepath.Match(s.pattern, entry.Name())
		if err != nil {
			s.logger.Warn("invalid test file pattern", "pattern", s.pattern, "error", err)
			return nil
		}
		if matched {
			files = append(files, domain.NewTestFile(filepath.Join(dir, entry.Name())))
		}
	}

	s.logger.Debug("scanned test directory", "dir", dir, "pattern", s.pattern, "files", len(files))
	return files
}
