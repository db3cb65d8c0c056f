// Package config loads and validates pinfield settings through viper.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete pinfield configuration
type Config struct {
	Pin     PinConfig     `mapstructure:"pin"`
	Style   StyleConfig   `mapstructure:"style"`
	Verify  VerifyConfig  `mapstructure:"verify"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PinConfig controls the entry field
type PinConfig struct {
	// Length is the number of slots
	Length int `mapstructure:"length"`
	// Charset names the accepted characters: alphanumeric, numeric, ascii, any
	Charset string `mapstructure:"charset"`
	// Placeholder is drawn in empty slots
	Placeholder string `mapstructure:"placeholder"`

	Secure        bool   `mapstructure:"secure"`
	SecureChar    string `mapstructure:"secure_char"`
	SecureDelayMs int    `mapstructure:"secure_delay_ms"`

	MoveToPreviousOnDelete bool `mapstructure:"move_to_previous_on_delete"`
	BlurOnComplete         bool `mapstructure:"blur_on_complete"`
	// Group splits the slots into two halves
	Group bool `mapstructure:"group"`
}

// StyleConfig controls rendering
type StyleConfig struct {
	// Variant is "bordered" or "underline"
	Variant string `mapstructure:"variant"`
}

// VerifyConfig controls code verification in the demo
type VerifyConfig struct {
	// Hash is a bcrypt hash the entered code is checked against.
	// Empty disables verification.
	Hash string `mapstructure:"hash"`
	// MaxAttempts ends the program after this many mismatches (0 = unlimited)
	MaxAttempts int `mapstructure:"max_attempts"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// File is the log destination; empty disables logging
	File string `mapstructure:"file"`
}

// SecureDelay returns the reveal delay as a time.Duration
func (c *PinConfig) SecureDelay() time.Duration {
	return time.Duration(c.SecureDelayMs) * time.Millisecond
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Pin: PinConfig{
			Length:                 5,
			Charset:                "alphanumeric",
			Placeholder:            "",
			Secure:                 false,
			SecureChar:             "*",
			SecureDelayMs:          800,
			MoveToPreviousOnDelete: true,
			BlurOnComplete:         true,
			Group:                  false,
		},
		Style: StyleConfig{
			Variant: "bordered",
		},
		Verify: VerifyConfig{
			Hash:        "",
			MaxAttempts: 3,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("pin.length", defaults.Pin.Length)
	viper.SetDefault("pin.charset", defaults.Pin.Charset)
	viper.SetDefault("pin.placeholder", defaults.Pin.Placeholder)
	viper.SetDefault("pin.secure", defaults.Pin.Secure)
	viper.SetDefault("pin.secure_char", defaults.Pin.SecureChar)
	viper.SetDefault("pin.secure_delay_ms", defaults.Pin.SecureDelayMs)
	viper.SetDefault("pin.move_to_previous_on_delete", defaults.Pin.MoveToPreviousOnDelete)
	viper.SetDefault("pin.blur_on_complete", defaults.Pin.BlurOnComplete)
	viper.SetDefault("pin.group", defaults.Pin.Group)

	viper.SetDefault("style.variant", defaults.Style.Variant)

	viper.SetDefault("verify.hash", defaults.Verify.Hash)
	viper.SetDefault("verify.max_attempts", defaults.Verify.MaxAttempts)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pinfield")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pinfield"
	}
	return filepath.Join(home, ".config", "pinfield")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
