package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults for all run modes.
type Config struct {
	IntervalSec int          `json:"interval_sec"`
	PageSize    int          `json:"page_size"`
	Source      SourceConfig `json:"source"`
	Server      ServerConfig `json:"server"`
	Theme       ThemeConfig  `json:"theme"`
}

// SourceConfig points at the upstream alarm-management API.
type SourceConfig struct {
	URL        string `json:"url"`
	TimeoutSec int    `json:"timeout_sec"`
}

// ServerConfig configures the -serve HTTP surface.
type ServerConfig struct {
	Host               string   `json:"host"`
	Port               int      `json:"port"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`
}

// ThemeConfig overrides the ok/warn/crit status colors with hex values.
// Empty fields keep the built-in palette.
type ThemeConfig struct {
	Normal   string `json:"normal,omitempty"`
	Warning  string `json:"warning,omitempty"`
	Critical string `json:"critical,omitempty"`
}

// Default returns a config with sensible defaults. The server defaults match
// the dashboard deployment convention: API on 13001, web frontend on 13000.
func Default() Config {
	return Config{
		IntervalSec: 30,
		PageSize:    20,
		Source: SourceConfig{
			TimeoutSec: 10,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 13001,
			CORSAllowedOrigins: []string{
				"http://localhost:13000",
				"http://localhost:13001",
			},
		},
	}
}

// Path returns ~/.config/alarmtop/config.json (or XDG_CONFIG_HOME).
// Returns empty string if the home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "alarmtop", "config.json")
}

// Load loads config from the given path, or the default path when empty.
// Returns defaults on any error; a parse error is logged, not fatal.
func Load(path string) Config {
	cfg := Default()
	if path == "" {
		path = Path()
	}
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("alarmtop: warning: config parse error: %v", err)
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
