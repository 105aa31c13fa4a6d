// ABOUTME: Caltrack configuration with storage backend selection.
// ABOUTME: Handles config file load/save and the store factory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sayalik/caltrack/internal/store"
)

// Config stores caltrack tool configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite",
	// or "charm" (cloud-synced).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage. Badger puts
	// its value log here, SQLite puts caltrack.db here. Supports ~
	// expansion. Defaults to ~/.local/share/caltrack.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return store.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the config file path following the XDG spec.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "caltrack", "config.json")
}

// Load reads the config file, returning defaults when it doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

// Save writes the config file, creating the directory if needed.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// OpenStore creates a Store implementation based on the configured backend.
func (c *Config) OpenStore() (store.Store, error) {
	switch c.GetBackend() {
	case "badger":
		return store.OpenBadger(filepath.Join(c.GetDataDir(), "badger"))
	case "sqlite":
		return store.OpenSQLite(filepath.Join(c.GetDataDir(), "caltrack.db"))
	case "charm":
		return store.OpenCharm()
	default:
		return nil, fmt.Errorf("unknown backend %q (use badger, sqlite, or charm)", c.Backend)
	}
}
