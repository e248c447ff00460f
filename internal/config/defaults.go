package config

const (
	// DefaultTestDir is the directory scanned for test programs
	DefaultTestDir = "tests"
	// DefaultPattern is the glob a file name must match to be a test program
	DefaultPattern = "*.v"
	// DefaultToolchain runs the VM through cargo in quiet mode
	DefaultToolchain = "cargo run -q"
	// DefaultEnvFile is loaded from the working directory before reading the environment
	DefaultEnvFile = ".env"
)

// Environment variables that override the defaults
const (
	EnvTestDir   = "VTP_TEST_DIR"
	EnvPattern   = "VTP_PATTERN"
	// EnvToolchain is split on whitespace with no quoting, so the command
	// and its arguments cannot contain spaces. Put such a toolchain behind a
	// wrapper script on a space-free path.
	EnvToolchain = "VTP_TOOLCHAIN"
	EnvDebug     = "VTP_DEBUG"
)
