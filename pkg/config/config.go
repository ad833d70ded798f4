package config

import (
	"github.com/smathieu/dualpane/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Compare CompareConfig `yaml:"compare"`
	Theme   ThemeConfig   `yaml:"theme"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CompareConfig holds comparison-related settings
type CompareConfig struct {
	// IncludeHidden includes dot-files in pane listings
	IncludeHidden bool `yaml:"include_hidden"`
}

// ThemeConfig holds theming-related settings
type ThemeConfig struct {
	// Current is the name of the active theme; empty selects the user theme
	Current string `yaml:"current"`
	// Dir is the custom themes directory; empty uses the platform default
	Dir string `yaml:"dir"`
	// UserFile is where the user theme is persisted; empty uses the
	// platform default
	UserFile string `yaml:"user_file"`
	// Dictionary is an optional localization dictionary file
	Dictionary string `yaml:"dictionary"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar while marking
	Color    bool   `yaml:"color"`    // Render marks with the active theme's colors
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Compare: CompareConfig{
			IncludeHidden: false,
		},
		Theme: ThemeConfig{
			Current: "",
			Dir:     "",
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: false,
			Color:    true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
