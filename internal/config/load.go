package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
		resolveAssetDir(cfg, filepath.Dir(configPath))
	}

	// CLI flags win; a flag-provided asset dir stays relative to the cwd
	applyFlags(cfg)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "hoverwave")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "hoverwave")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "hoverwave")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "hoverwave")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// resolveAssetDir anchors a relative asset dir at the config file's
// directory, so a config next to its images works from any cwd.
func resolveAssetDir(cfg *Config, base string) {
	if cfg.Assets.Dir == "" || filepath.IsAbs(cfg.Assets.Dir) || base == "." {
		return
	}
	cfg.Assets.Dir = filepath.Join(base, cfg.Assets.Dir)
}
