package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// It is built once at startup and only read afterwards.
type Config struct {
	// Directory holding the test programs
	TestDir string
	// Glob matched against each file's base name
	Pattern string

	// Toolchain command and its leading arguments; the test path is appended
	ToolchainCommand string
	ToolchainArgs    []string

	Debug bool
}

// New creates a new Config with defaults
func New() *Config {
	fields := strings.Fields(DefaultToolchain)
	return &Config{
		TestDir:          DefaultTestDir,
		Pattern:          DefaultPattern,
		ToolchainCommand: fields[0],
		ToolchainArgs:    fields[1:],
	}
}

// Load loads envFile (if present) into the process environment and builds a
// Config from the defaults and any VTP_* overrides. Variables already set in
// the environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to resolve overrides.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := New()

	if v, ok := lookup(EnvTestDir); ok && v != "" {
		cfg.TestDir = v
	}

	if v, ok := lookup(EnvPattern); ok && v != "" {
		if _, err := filepath.Match(v, ""); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvPattern, v, err)
		}
		cfg.Pattern = v
	}

	if v, ok := lookup(EnvToolchain); ok {
		fields := strings.Fields(v)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%s is set but empty", EnvToolchain)
		}
		cfg.ToolchainCommand = fields[0]
		cfg.ToolchainArgs = fields[1:]
	}

	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

// Toolchain returns the full command line used for a test program path.
func (c *Config) Toolchain(path string) []string {
	argv := make([]string, 0, len(c.ToolchainArgs)+2)
	argv = append(argv, c.ToolchainCommand)
	argv = append(argv, c.ToolchainArgs...)
	return append(argv, path)
}
