// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// EnvConfigPath overrides the config file location
const EnvConfigPath = "PALETTEKIT_CONFIG"

var v *viper.Viper

// DefaultPath returns $PALETTEKIT_CONFIG or ~/.palettekit/config.yaml
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".palettekit", "config.yaml")
	}
	return filepath.Join(home, ".palettekit", "config.yaml")
}

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	setDefaults()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// First run writes the defaults out so `config list` has something to show
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// InitDefaults sets up an in-memory config with defaults only
func InitDefaults() {
	v = viper.New()
	setDefaults()
}

func setDefaults() {
	// Palette defaults
	v.SetDefault("palette.name", "primary")
	v.SetDefault("palette.mode", "monochromatic")
	v.SetDefault("palette.steps", 11)
	v.SetDefault("palette.preserve_accessibility", true)
	v.SetDefault("palette.semantic_colors", true)

	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.cache_enabled", true)
	v.SetDefault("server.cache_size", 256)

	// Rate limit defaults
	v.SetDefault("ratelimit.capacity", 60)
	v.SetDefault("ratelimit.interval", "1m")

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", defaultDatabasePath())

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Render defaults
	v.SetDefault("render.swatch_width", 880)
	v.SetDefault("render.swatch_height", 160)
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "palettekit.db"
	}
	return filepath.Join(home, ".palettekit", "palettekit.db")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// IsSet reports whether key has a value or default
func IsSet(key string) bool {
	if v == nil {
		return false
	}
	return v.IsSet(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
