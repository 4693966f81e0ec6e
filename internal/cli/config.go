package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/troubleduxj/flowlayout/pkg/pipeline"
)

// fileConfig holds layout defaults loaded from a TOML config file.
// Every field is optional; flags always win over the file.
type fileConfig struct {
	Algorithm    string  `toml:"algorithm"`
	Direction    string  `toml:"direction"`
	Alignment    string  `toml:"alignment"`
	NodeSpacing  float64 `toml:"node_spacing"`
	LevelSpacing float64 `toml:"level_spacing"`
	Padding      float64 `toml:"padding"`
	Seed         uint64  `toml:"seed"`
}

// defaultConfigPath returns the config file location using the XDG standard
// (~/.config/flowlayout/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfigDefaults fills unset layout options from a TOML config file.
// When path is empty the default location is tried, and a missing file there
// is not an error. An explicit --config path must exist.
func loadConfigDefaults(opts *pipeline.Options, path string) error {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return nil
		}
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("load config %s: %w", path, err)
	}

	if opts.Algorithm == "" {
		opts.Algorithm = cfg.Algorithm
	}
	if opts.Direction == "" {
		opts.Direction = cfg.Direction
	}
	if opts.Alignment == "" {
		opts.Alignment = cfg.Alignment
	}
	if opts.NodeSpacing == 0 {
		opts.NodeSpacing = cfg.NodeSpacing
	}
	if opts.LevelSpacing == 0 {
		opts.LevelSpacing = cfg.LevelSpacing
	}
	if opts.Padding == 0 {
		opts.Padding = cfg.Padding
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}
	return nil
}
