package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/smathieu/dualpane/pkg/logging"
)

// ManagerConfig holds the manager's collaborators and paths
type ManagerConfig struct {
	// ThemesDir is the directory scanned for custom theme files
	ThemesDir string

	// UserThemePath is where the user theme is persisted. Empty disables
	// persistence.
	UserThemePath string

	// Translate resolves localized strings. Nil falls back to returning
	// the key itself.
	Translate TranslateFunc

	// Logger receives structured events. Nil disables logging.
	Logger logging.Logger
}

// Manager owns the process's themes: the single user theme, the predefined
// themes and the custom themes loaded from the themes directory. All themes
// share one registry and one default palette.
type Manager struct {
	mu        sync.Mutex
	registry  *Registry
	defaults  *Defaults
	translate TranslateFunc
	logger    logging.Logger

	themesDir     string
	userThemePath string

	user       *Theme
	predefined []*Theme
	custom     map[string]*Theme
	current    *Theme
}

// NewManager creates a manager with the built-in predefined themes and an
// empty (or previously persisted) user theme. The user theme starts current.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	translate := cfg.Translate
	if translate == nil {
		translate = func(key string) string { return key }
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	m := &Manager{
		registry:      NewRegistry(),
		defaults:      NewDefaults(),
		translate:     translate,
		logger:        logger,
		themesDir:     cfg.ThemesDir,
		userThemePath: cfg.UserThemePath,
		custom:        make(map[string]*Theme),
	}

	m.predefined = []*Theme{
		m.newPredefined("Midnight", map[ColorID]Color{
			FileTableBackground:       "#0b0e14",
			FileTableForeground:       "#bfbdb6",
			FileTableMarkedForeground: "#f07178",
			StatusBarBackground:       "#0d1017",
			StatusBarForeground:       "#565b66",
		}),
		m.newPredefined("Daylight", map[ColorID]Color{
			FileTableBackground:       "#fafafa",
			FileTableForeground:       "#383a42",
			FileTableMarkedForeground: "#ca1243",
			StatusBarBackground:       "#eaeaeb",
			StatusBarForeground:       "#696c77",
		}),
	}

	if cfg.UserThemePath != "" {
		if _, err := os.Stat(cfg.UserThemePath); err == nil {
			user, err := LoadFromFile(cfg.UserThemePath, m.registry, m.defaults, TypeUser, translate)
			if err != nil {
				return nil, fmt.Errorf("failed to load user theme: %w", err)
			}
			// Name resolution for the user theme stays lazy
			user.SetName("")
			m.user = user
		}
	}
	if m.user == nil {
		m.user = New(m.registry, m.defaults, TypeUser, "", translate)
	}

	m.current = m.user
	return m, nil
}

// newPredefined builds a read-only built-in theme. Overrides are written to
// the bag directly since SetColor rejects non-user themes.
func (m *Manager) newPredefined(name string, colors map[ColorID]Color) *Theme {
	t := New(m.registry, m.defaults, TypePredefined, name, m.translate)
	for id, color := range colors {
		t.data.setColor(id, color)
	}
	return t
}

// Registry returns the shared change notification registry
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Defaults returns the shared default palette
func (m *Manager) Defaults() *Defaults {
	return m.defaults
}

// UserTheme returns the single mutable user theme
func (m *Manager) UserTheme() *Theme {
	return m.user
}

// ThemesDir returns the custom themes directory
func (m *Manager) ThemesDir() string {
	return m.themesDir
}

// CurrentTheme returns the active theme
func (m *Manager) CurrentTheme() *Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// SetCurrent makes the named theme active
func (m *Manager) SetCurrent(name string) error {
	t, ok := m.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown theme: %s", name)
	}

	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
	return nil
}

// Lookup finds a theme by name, searching the user theme, predefined themes
// and custom themes in that order
func (m *Manager) Lookup(name string) (*Theme, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user.Name() == name {
		return m.user, true
	}
	for _, t := range m.predefined {
		if t.Name() == name {
			return t, true
		}
	}
	if t, ok := m.custom[name]; ok {
		return t, true
	}
	return nil, false
}

// Themes returns all known themes sorted by name, the user theme first
func (m *Manager) Themes() []*Theme {
	m.mu.Lock()
	defer m.mu.Unlock()

	themes := make([]*Theme, 0, 1+len(m.predefined)+len(m.custom))
	themes = append(themes, m.predefined...)
	for _, t := range m.custom {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].Name() < themes[j].Name() })

	return append([]*Theme{m.user}, themes...)
}

// LoadCustomThemes scans the themes directory for YAML theme files.
// A missing directory is not an error; files that fail to parse are skipped
// and logged.
func (m *Manager) LoadCustomThemes(ctx context.Context) error {
	if m.themesDir == "" {
		return nil
	}

	entries, err := os.ReadDir(m.themesDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read themes directory: %w", err)
	}

	loaded := make(map[string]*Theme)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(m.themesDir, entry.Name())
		t, err := LoadFromFile(path, m.registry, m.defaults, TypeCustom, m.translate)
		if err != nil {
			m.logger.Warn(ctx, "skipping invalid theme file", logging.Fields{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}
		loaded[t.Name()] = t
	}

	m.mu.Lock()
	old := m.custom
	m.custom = loaded

	// If the active theme was a custom one, rebind it by name or fall back
	// to the user theme
	if m.current != nil && m.current.Type() == TypeCustom {
		if replacement, ok := loaded[m.current.Name()]; ok {
			m.current = replacement
		} else {
			m.current = m.user
		}
	}
	m.mu.Unlock()

	// Detach replaced themes from the default palette stream
	for _, t := range old {
		t.Close()
	}

	m.logger.Info(ctx, "custom themes loaded", logging.Fields{
		"dir":   m.themesDir,
		"count": len(loaded),
	})
	return nil
}

// SaveUserTheme persists the user theme to the configured path
func (m *Manager) SaveUserTheme() error {
	if m.userThemePath == "" {
		return fmt.Errorf("no user theme path configured")
	}
	return SaveToFile(m.user, m.userThemePath)
}
