package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.TestDir != DefaultTestDir {
		t.Errorf("expected TestDir %s, got %s", DefaultTestDir, cfg.TestDir)
	}
	if cfg.Pattern != DefaultPattern {
		t.Errorf("expected Pattern %s, got %s", DefaultPattern, cfg.Pattern)
	}
	if cfg.ToolchainCommand != "cargo" {
		t.Errorf("expected toolchain command cargo, got %s", cfg.ToolchainCommand)
	}
	if diff := cmp.Diff([]string{"run", "-q"}, cfg.ToolchainArgs); diff != "" {
		t.Errorf("toolchain args mismatch (-want +got):\n%s", diff)
	}
	if cfg.Debug {
		t.Error("debug should be off by default")
	}
}

func TestFromLookup(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "no overrides",
			env:  map[string]string{},
			want: New(),
		},
		{
			name: "all overrides",
			env: map[string]string{
				EnvTestDir:   "programs",
				EnvPattern:   "*.bin",
				EnvToolchain: "  ./target/release/vm   --quiet ",
				EnvDebug:     "true",
			},
			want: &Config{
				TestDir:          "programs",
				Pattern:          "*.bin",
				ToolchainCommand: "./target/release/vm",
				ToolchainArgs:    []string{"--quiet"},
				Debug:            true,
			},
		},
		{
			name: "empty values keep defaults",
			env:  map[string]string{EnvTestDir: "", EnvPattern: "", EnvDebug: ""},
			want: New(),
		},
		{
			name: "toolchain is split on whitespace without quoting",
			env:  map[string]string{EnvToolchain: `"/opt/my vm/run" -q`},
			want: &Config{
				TestDir:          DefaultTestDir,
				Pattern:          DefaultPattern,
				ToolchainCommand: `"/opt/my`,
				ToolchainArgs:    []string{`vm/run"`, "-q"},
			},
		},
		{
			name:    "blank toolchain",
			env:     map[string]string{EnvToolchain: "   "},
			wantErr: true,
		},
		{
			name:    "bad pattern",
			env:     map[string]string{EnvPattern: "[*.v"},
			wantErr: true,
		},
		{
			name:    "bad debug value",
			env:     map[string]string{EnvDebug: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromLookup(lookupFrom(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing env file is not an error", func(t *testing.T) {
		t.Setenv(EnvTestDir, "")
		cfg, err := Load(filepath.Join(t.TempDir(), ".env"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.TestDir != DefaultTestDir {
			t.Errorf("expected TestDir %s, got %s", DefaultTestDir, cfg.TestDir)
		}
	})

	t.Run("env file fills unset variables", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		content := "VTP_TEST_DIR=from-file\nVTP_PATTERN=*.vm\n"
		if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		// Setenv registers cleanup for both keys; the file only fills VTP_TEST_DIR.
		t.Setenv(EnvPattern, "*.prog")
		t.Setenv(EnvTestDir, "")
		os.Unsetenv(EnvTestDir)

		cfg, err := Load(envFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.TestDir != "from-file" {
			t.Errorf("expected TestDir from-file, got %s", cfg.TestDir)
		}
		if cfg.Pattern != "*.prog" {
			t.Errorf("environment should win over env file, got pattern %s", cfg.Pattern)
		}
	})
}

func TestConfig_Toolchain(t *testing.T) {
	cfg := New()
	got := cfg.Toolchain("tests/add.v")
	want := []string{"cargo", "run", "-q", "tests/add.v"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("argv mismatch (-want +got):\n%s", diff)
	}
	// Repeated calls must not share a backing array with ToolchainArgs.
	_ = cfg.Toolchain("tests/sub.v")
	if diff := cmp.Diff([]string{"run", "-q"}, cfg.ToolchainArgs); diff != "" {
		t.Errorf("toolchain args mutated (-want +got):\n%s", diff)
	}
}
