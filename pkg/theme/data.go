package theme

import (
	"sync"
)

// Defaults is the process-wide base palette. It supplies the value of every
// property a theme has not overridden, and publishes change events on its own
// registry when the palette itself is updated.
type Defaults struct {
	mu       sync.Mutex
	fonts    map[FontID]Font
	colors   map[ColorID]Color
	registry *Registry
}

// NewDefaults creates a base palette seeded with the built-in values
func NewDefaults() *Defaults {
	d := &Defaults{
		fonts:    make(map[FontID]Font, fontIDCount),
		colors:   make(map[ColorID]Color, colorIDCount),
		registry: NewRegistry(),
	}

	for id := FontID(0); id < fontIDCount; id++ {
		d.fonts[id] = Font{Family: "monospace", Size: 12}
	}

	d.colors[FileTableBackground] = "#1e1e2e"
	d.colors[FileTableForeground] = "#cdd6f4"
	d.colors[FileTableSelectedBackground] = "#45475a"
	d.colors[FileTableSelectedForeground] = "#f5e0dc"
	d.colors[FileTableMarkedForeground] = "#f38ba8"
	d.colors[ShellBackground] = "#181825"
	d.colors[ShellForeground] = "#bac2de"
	d.colors[EditorBackground] = "#1e1e2e"
	d.colors[EditorForeground] = "#cdd6f4"
	d.colors[LocationBarBackground] = "#313244"
	d.colors[LocationBarForeground] = "#cdd6f4"
	d.colors[StatusBarBackground] = "#11111b"
	d.colors[StatusBarForeground] = "#a6adc8"

	return d
}

// Font returns the default value for a font id
func (d *Defaults) Font(id FontID) Font {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fonts[id]
}

// Color returns the default value for a color id
func (d *Defaults) Color(id ColorID) Color {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.colors[id]
}

// SetFont updates a default font value. If the value actually changes, a
// font change event with a nil theme is published to defaults subscribers.
// Returns true when a change occurred.
func (d *Defaults) SetFont(id FontID, font Font) bool {
	d.mu.Lock()
	if d.fonts[id] == font {
		d.mu.Unlock()
		return false
	}
	d.fonts[id] = font
	d.mu.Unlock()

	d.registry.NotifyFontChanged(FontChangedEvent{ID: id, Font: font})
	return true
}

// SetColor updates a default color value, symmetric to SetFont
func (d *Defaults) SetColor(id ColorID, color Color) bool {
	d.mu.Lock()
	if d.colors[id] == color {
		d.mu.Unlock()
		return false
	}
	d.colors[id] = color
	d.mu.Unlock()

	d.registry.NotifyColorChanged(ColorChangedEvent{ID: id, Color: color})
	return true
}

// Subscribe registers a listener for default palette changes
func (d *Defaults) Subscribe(listener Listener) *Subscription {
	return d.registry.Subscribe(listener)
}

// data is a theme's bag of font and color overrides. Reads fall back to the
// default palette for properties that were never set.
type data struct {
	fonts    map[FontID]Font
	colors   map[ColorID]Color
	defaults *Defaults
}

func newData(defaults *Defaults) *data {
	return &data{
		fonts:    make(map[FontID]Font),
		colors:   make(map[ColorID]Color),
		defaults: defaults,
	}
}

// copyFrom replaces all overrides with those of the template
func (d *data) copyFrom(template *data) {
	d.fonts = make(map[FontID]Font, len(template.fonts))
	for id, font := range template.fonts {
		d.fonts[id] = font
	}
	d.colors = make(map[ColorID]Color, len(template.colors))
	for id, color := range template.colors {
		d.colors[id] = color
	}
}

// font resolves a font id: override if set, default palette otherwise
func (d *data) font(id FontID) Font {
	if font, ok := d.fonts[id]; ok {
		return font
	}
	return d.defaults.Font(id)
}

// color resolves a color id: override if set, default palette otherwise
func (d *data) color(id ColorID) Color {
	if color, ok := d.colors[id]; ok {
		return color
	}
	return d.defaults.Color(id)
}

// fontSet reports whether the font id was explicitly overridden
func (d *data) fontSet(id FontID) bool {
	_, ok := d.fonts[id]
	return ok
}

// colorSet reports whether the color id was explicitly overridden
func (d *data) colorSet(id ColorID) bool {
	_, ok := d.colors[id]
	return ok
}

// setFont records an override and reports whether the resolved value changed
func (d *data) setFont(id FontID, font Font) bool {
	if current, ok := d.fonts[id]; ok && current == font {
		return false
	}
	d.fonts[id] = font
	return true
}

// setColor records an override and reports whether the resolved value changed
func (d *data) setColor(id ColorID, color Color) bool {
	if current, ok := d.colors[id]; ok && current == color {
		return false
	}
	d.colors[id] = color
	return true
}
