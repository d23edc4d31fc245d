package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the user's wisp configuration.
type Config struct {
	DatabasePath      string   `toml:"database_path"`
	DebounceMs        int      `toml:"debounce_ms"`
	SuggestTTLMinutes int      `toml:"suggest_ttl_minutes"`
	SeedDomains       []string `toml:"seed_domains"`
}

// Dir returns the config directory path.
// Resolution order: $WISP_CONFIG_DIR > $XDG_CONFIG_HOME/wisp > ~/.config/wisp
func Dir() string {
	if dir := os.Getenv("WISP_CONFIG_DIR"); dir != "" {
		return dir
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "wisp")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "wisp-config")
	}
	return filepath.Join(home, ".config", "wisp")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DatabasePath:      filepath.Join(Dir(), "wisp.db"),
		DebounceMs:        150,
		SuggestTTLMinutes: 5,
	}
}

// Load reads the config file, filling any unset field with its default.
// A missing file is not an error; the defaults apply.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = Default().DatabasePath
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = Default().DebounceMs
	}
	if cfg.SuggestTTLMinutes <= 0 {
		cfg.SuggestTTLMinutes = Default().SuggestTTLMinutes
	}
	return cfg, nil
}
