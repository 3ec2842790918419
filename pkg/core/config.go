// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds gmodbuild configuration. The config file supplies defaults;
// command-line flags override it.
type Config struct {
	Toolchain  string `yaml:"toolchain"`
	OutDir     string `yaml:"outdir"`
	Arch       int    `yaml:"arch"`
	WindowsGNU bool   `yaml:"windows_gnu"`
	Compress   bool   `yaml:"compress"`
	Debug      bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration. The 32-bit default matches
// the Garry's Mod server's main branch, which still ships 32-bit.
func DefaultConfig() *Config {
	return &Config{
		Toolchain: "stable",
		OutDir:    "bin",
		Arch:      32,
	}
}

// LoadConfig loads configuration from file. An empty path means the default
// location; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "gmodbuild", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Arch != 32 && cfg.Arch != 64 {
		return nil, fmt.Errorf("config: arch must be 32 or 64, got %d", cfg.Arch)
	}

	return cfg, nil
}
