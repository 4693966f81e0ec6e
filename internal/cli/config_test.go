package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/troubleduxj/flowlayout/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
algorithm = "circular"
direction = "lr"
node_spacing = 80.0
seed = 7
`)

	opts := pipeline.Options{}
	if err := loadConfigDefaults(&opts, path); err != nil {
		t.Fatalf("loadConfigDefaults() error: %v", err)
	}

	if opts.Algorithm != "circular" {
		t.Errorf("Algorithm = %q, want %q", opts.Algorithm, "circular")
	}
	if opts.Direction != "lr" {
		t.Errorf("Direction = %q, want %q", opts.Direction, "lr")
	}
	if opts.NodeSpacing != 80 {
		t.Errorf("NodeSpacing = %v, want 80", opts.NodeSpacing)
	}
	if opts.Seed != 7 {
		t.Errorf("Seed = %d, want 7", opts.Seed)
	}
}

func TestLoadConfigDefaultsFlagsWin(t *testing.T) {
	path := writeConfig(t, `
algorithm = "circular"
padding = 99.0
`)

	opts := pipeline.Options{Algorithm: "grid"}
	if err := loadConfigDefaults(&opts, path); err != nil {
		t.Fatalf("loadConfigDefaults() error: %v", err)
	}

	if opts.Algorithm != "grid" {
		t.Errorf("Algorithm = %q, flag value should win over config", opts.Algorithm)
	}
	if opts.Padding != 99 {
		t.Errorf("Padding = %v, want 99 from config", opts.Padding)
	}
}

func TestLoadConfigDefaultsMissingExplicitPath(t *testing.T) {
	opts := pipeline.Options{}
	err := loadConfigDefaults(&opts, filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("explicit missing config file should be an error")
	}
}

func TestLoadConfigDefaultsMissingDefaultPath(t *testing.T) {
	// Point the default config location at an empty directory.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	opts := pipeline.Options{}
	if err := loadConfigDefaults(&opts, ""); err != nil {
		t.Errorf("missing default config should not be an error, got %v", err)
	}
}

func TestLoadConfigDefaultsMalformed(t *testing.T) {
	path := writeConfig(t, `algorithm = [not toml`)

	opts := pipeline.Options{}
	if err := loadConfigDefaults(&opts, path); err == nil {
		t.Error("malformed config should be an error")
	}
}

func TestDefaultConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	path, err := defaultConfigPath()
	if err != nil {
		t.Fatalf("defaultConfigPath() error: %v", err)
	}

	want := filepath.Join("/tmp/custom-config", appName, "config.toml")
	if path != want {
		t.Errorf("defaultConfigPath() = %q, want %q", path, want)
	}
}
