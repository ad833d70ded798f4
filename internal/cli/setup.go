package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/smathieu/dualpane/internal/platform"
	"github.com/smathieu/dualpane/pkg/config"
	"github.com/smathieu/dualpane/pkg/i18n"
	"github.com/smathieu/dualpane/pkg/logging"
	"github.com/smathieu/dualpane/pkg/theme"
)

// loadConfig loads configuration from the --config flag or the default path
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// newLogger builds the logger described by the configuration.
// --verbose lowers the level to debug and mirrors logs to stderr when no
// log file is configured.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled && !globalFlags.Verbose {
		return logging.NewNullLogger(), nil
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	if globalFlags.Verbose {
		level = logging.DebugLevel
	}

	format := logging.Format(cfg.Logging.Format)

	if cfg.Logging.File != "" {
		return logging.NewFileLogger(cfg.Logging.File, format, level)
	}
	if globalFlags.Verbose {
		return logging.NewWriterLogger(os.Stderr, logging.FormatText, level), nil
	}
	return logging.NewNullLogger(), nil
}

// newTranslator builds the localization collaborator
func newTranslator(cfg *config.Config) (*i18n.Translator, error) {
	if cfg.Theme.Dictionary == "" {
		return i18n.Default(), nil
	}
	return i18n.LoadFromFile(cfg.Theme.Dictionary)
}

// newThemeManager builds the theme manager with custom themes loaded and the
// configured theme selected
func newThemeManager(ctx context.Context, cfg *config.Config, logger logging.Logger) (*theme.Manager, error) {
	themesDir := cfg.Theme.Dir
	if themesDir == "" {
		dir, err := platform.ThemesDir()
		if err != nil {
			return nil, err
		}
		themesDir = dir
	}

	userThemePath := cfg.Theme.UserFile
	if userThemePath == "" {
		path, err := platform.UserThemePath()
		if err != nil {
			return nil, err
		}
		userThemePath = path
	}

	translator, err := newTranslator(cfg)
	if err != nil {
		return nil, err
	}

	manager, err := theme.NewManager(theme.ManagerConfig{
		ThemesDir:     themesDir,
		UserThemePath: userThemePath,
		Translate:     translator.Get,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	if err := manager.LoadCustomThemes(ctx); err != nil {
		return nil, err
	}

	if cfg.Theme.Current != "" {
		if err := manager.SetCurrent(cfg.Theme.Current); err != nil {
			return nil, fmt.Errorf("failed to select configured theme: %w", err)
		}
	}

	return manager, nil
}
