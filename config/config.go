// Package config handles application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName        = "zeno"
	configFileName = "config.json"
)

// DefaultHotkey is the chord registered when the config file sets none.
// "CmdOrCtrl" resolves to Cmd on macOS and Ctrl everywhere else.
const DefaultHotkey = "CmdOrCtrl+Space"

// Config represents the application configuration.
type Config struct {
	// Hotkey is the global shortcut chord that toggles the overlay.
	Hotkey string `json:"hotkey"`

	// Overlay configures the overlay window.
	Overlay OverlayConfig `json:"overlay"`

	// JournalTTLDays controls how long activation records are kept.
	JournalTTLDays int `json:"journal_ttl_days,omitempty"`
}

// OverlayConfig holds overlay window dimensions.
type OverlayConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Load loads configuration from the config file.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save persists the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("get config path: %w", err)
	}
	return c.saveTo(path)
}

func (c *Config) saveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

const (
	defaultOverlayWidth   = 720
	defaultOverlayHeight  = 480
	defaultJournalTTLDays = 7
)

func (c *Config) applyDefaults() {
	if c.Hotkey == "" {
		c.Hotkey = DefaultHotkey
	}
	if c.Overlay.Width == 0 {
		c.Overlay.Width = defaultOverlayWidth
	}
	if c.Overlay.Height == 0 {
		c.Overlay.Height = defaultOverlayHeight
	}
	if c.JournalTTLDays == 0 {
		c.JournalTTLDays = defaultJournalTTLDays
	}
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

// Default returns a configuration with every default applied. Callers that
// fail to load the config file must fall back to this, never to a partial
// Config, so the overlay window keeps usable dimensions.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
