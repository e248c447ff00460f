package domain

import "path/filepath"

// TestFile is a discovered test program
type TestFile struct {
	Path string // Full path passed to the toolchain
	Name string // Base name, used for skip matching
}

// NewTestFile creates a TestFile from its path
func NewTestFile(path string) TestFile {
	return TestFile{Path: path, Name: filepath.Base(path)}
}
