package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// themeFile is the on-disk YAML representation of a theme's overrides
type themeFile struct {
	Name   string           `yaml:"name"`
	Fonts  map[string]Font  `yaml:"fonts,omitempty"`
	Colors map[string]Color `yaml:"colors,omitempty"`
}

// LoadFromFile reads a theme from a YAML file. The theme's name defaults to
// the file name (without extension) when the file does not declare one.
func LoadFromFile(path string, registry *Registry, defaults *Defaults, typ Type, translate TranslateFunc) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	name := file.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	t := New(registry, defaults, typ, name, translate)
	for key, font := range file.Fonts {
		id, ok := ParseFontID(key)
		if !ok {
			t.Close()
			return nil, fmt.Errorf("unknown font property %q in %s", key, path)
		}
		t.data.setFont(id, font)
	}
	for key, color := range file.Colors {
		id, ok := ParseColorID(key)
		if !ok {
			t.Close()
			return nil, fmt.Errorf("unknown color property %q in %s", key, path)
		}
		t.data.setColor(id, color)
	}

	return t, nil
}

// SaveToFile writes the theme's overrides to a YAML file. Properties falling
// back to the default palette are not written.
func SaveToFile(t *Theme, path string) error {
	file := themeFile{Name: t.Name()}

	for _, id := range FontIDs() {
		if t.FontSet(id) {
			if file.Fonts == nil {
				file.Fonts = make(map[string]Font)
			}
			file.Fonts[id.String()] = t.Font(id)
		}
	}
	for _, id := range ColorIDs() {
		if t.ColorSet(id) {
			if file.Colors == nil {
				file.Colors = make(map[string]Color)
			}
			file.Colors[id.String()] = t.Color(id)
		}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}

	return nil
}
