package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration
type Config struct {
	Display DisplayConfig `toml:"display"`
	Watch   WatchConfig   `toml:"watch"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig holds display options
type DisplayConfig struct {
	Timestamps bool `toml:"timestamps"`  // prefix each line with the time it was shown
	DiscardOld bool `toml:"discard_old"` // clear scrollback when the file is truncated
	Highlight  bool `toml:"highlight"`   // syntax highlight lines by file type
}

// WatchConfig controls change detection
type WatchConfig struct {
	// PollInterval re-checks the file on a timer in addition to filesystem
	// events. Zero disables polling.
	PollInterval Duration `toml:"poll_interval"`
}

// LogConfig controls the diagnostic log
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a string such as "500ms" in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Timestamps: false,
			DiscardOld: false,
			Highlight:  false,
		},
		Watch: WatchConfig{
			PollInterval: Duration{0},
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// Load loads config from path, or from the default location when path is
// empty. A missing default file yields the defaults; a missing explicit file
// is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := strings.TrimSpace(path) != ""
	if explicit {
		expanded, err := ExpandPath(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	} else {
		path = getConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Log.File != "" {
		if cfg.Log.File, err = ExpandPath(cfg.Log.File); err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "viewlog", "config.toml")
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "viewlog", "config.toml")
}

// GetConfigPath exports the config path for user reference
func GetConfigPath() string {
	return getConfigPath()
}
