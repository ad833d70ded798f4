package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smathieu/dualpane/pkg/models"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "BadOutputFormat",
			mutate:    func(c *Config) { c.Output.Format = "xml" },
			wantField: "output.format",
		},
		{
			name:      "BadLogFormat",
			mutate:    func(c *Config) { c.Logging.Format = "csv" },
			wantField: "logging.format",
		},
		{
			name:      "BadLogLevel",
			mutate:    func(c *Config) { c.Logging.Level = "trace" },
			wantField: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}

			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *models.ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field = %s, want %s", verr.Field, tt.wantField)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("OverridesDefaults", func(t *testing.T) {
		path := filepath.Join(tempDir, "config.yaml")
		content := `theme:
  current: dracula
output:
  format: json
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}
		if cfg.Theme.Current != "dracula" {
			t.Errorf("theme.current = %s, want dracula", cfg.Theme.Current)
		}
		if cfg.Output.Format != "json" {
			t.Errorf("output.format = %s, want json", cfg.Output.Format)
		}
		// Untouched settings keep their defaults
		if cfg.Logging.Level != "info" {
			t.Errorf("logging.level = %s, want default info", cfg.Logging.Level)
		}
	})

	t.Run("InvalidConfigRejected", func(t *testing.T) {
		path := filepath.Join(tempDir, "bad.yaml")
		if err := os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("LoadFromFile() succeeded for an invalid config")
		}
	})
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Theme.Current = "Midnight"
	cfg.Output.Progress = true

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Theme.Current != "Midnight" {
		t.Errorf("theme.current = %s, want Midnight", loaded.Theme.Current)
	}
	if !loaded.Output.Progress {
		t.Error("output.progress = false, want true")
	}
}
