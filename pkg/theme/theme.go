package theme

import (
	"errors"
	"fmt"
)

// Type classifies a theme
type Type int

const (
	// TypeUser is the single user-editable theme
	TypeUser Type = iota
	// TypePredefined is a theme shipped with the application
	TypePredefined
	// TypeCustom is a theme loaded from the user's themes directory
	TypeCustom
)

// String returns the type's display name
func (t Type) String() string {
	switch t {
	case TypeUser:
		return "user"
	case TypePredefined:
		return "predefined"
	case TypeCustom:
		return "custom"
	default:
		return fmt.Sprintf("invalid(%d)", int(t))
	}
}

var (
	// ErrIllegalMutation reports an attempt to modify a non-user theme
	ErrIllegalMutation = errors.New("theme: trying to modify a non-user theme")
	// ErrIllegalType reports a theme type outside the known enumeration
	ErrIllegalType = errors.New("theme: illegal theme type")
)

// TranslateFunc resolves a message key to a localized string
type TranslateFunc func(key string) string

// customThemeNameKey is the dictionary key for the lazy user theme name
const customThemeNameKey = "theme.custom_theme"

// Theme is a named, typed bag of font and color properties. Only the user
// theme may be mutated; predefined and custom themes are read-only once
// constructed. Changes are published through the registry supplied at
// construction time.
type Theme struct {
	data      *data
	name      string
	typ       Type
	registry  *Registry
	translate TranslateFunc

	// The subscription keeps the defaults forwarder alive for exactly as
	// long as the theme; Close cancels it.
	defaultsSub *Subscription
}

// New creates an empty theme of the given type. A user theme created with an
// empty name resolves it lazily from the translator on first Name call.
func New(registry *Registry, defaults *Defaults, typ Type, name string, translate TranslateFunc) *Theme {
	checkType(typ)

	t := &Theme{
		data:      newData(defaults),
		typ:       typ,
		name:      name,
		registry:  registry,
		translate: translate,
	}
	t.defaultsSub = defaults.Subscribe(&defaultValuesListener{theme: t})
	return t
}

// NewFromTemplate creates a theme seeded with another theme's overrides
func NewFromTemplate(registry *Registry, defaults *Defaults, typ Type, name string, translate TranslateFunc, template *Theme) *Theme {
	t := New(registry, defaults, typ, name, translate)
	t.data.copyFrom(template.data)
	return t
}

// Close cancels the theme's default palette subscription. After Close the
// theme no longer forwards default value changes.
func (t *Theme) Close() {
	if t.defaultsSub != nil {
		t.defaultsSub.Cancel()
		t.defaultsSub = nil
	}
}

// CanModify reports whether the theme accepts mutations.
// Only the user theme does.
func (t *Theme) CanModify() bool {
	return t.typ == TypeUser
}

// Type returns the theme's type
func (t *Theme) Type() Type {
	return t.typ
}

// Name returns the theme's name. A user theme with no explicit name resolves
// it from the translator on first call and caches the result.
func (t *Theme) Name() string {
	if t.name == "" && t.typ == TypeUser {
		t.name = t.translate(customThemeNameKey)
	}
	return t.name
}

// SetName sets the theme's name. An empty name re-enables lazy resolution
// for user themes.
func (t *Theme) SetName(name string) {
	t.name = name
}

// SetType changes the theme's type. Setting TypeUser resets the name so it
// is lazily re-derived. Panics with ErrIllegalType on an unknown type.
func (t *Theme) SetType(typ Type) {
	checkType(typ)

	t.typ = typ
	if typ == TypeUser {
		t.SetName("")
	}
}

// Font returns the resolved value for a font id
func (t *Theme) Font(id FontID) Font {
	return t.data.font(id)
}

// Color returns the resolved value for a color id
func (t *Theme) Color(id ColorID) Color {
	return t.data.color(id)
}

// FontSet reports whether the theme explicitly overrides the font id
func (t *Theme) FontSet(id FontID) bool {
	return t.data.fontSet(id)
}

// ColorSet reports whether the theme explicitly overrides the color id
func (t *Theme) ColorSet(id ColorID) bool {
	return t.data.colorSet(id)
}

// SetFont sets one of the theme's fonts and reports whether the value
// actually changed. A change publishes exactly one font change event carrying
// the resolved value. Panics with ErrIllegalMutation unless the theme is the
// user theme.
func (t *Theme) SetFont(id FontID, font Font) bool {
	if t.typ != TypeUser {
		panic(ErrIllegalMutation)
	}

	if t.data.setFont(id, font) {
		// Resolve through the bag so the event never carries a zero value
		t.registry.NotifyFontChanged(FontChangedEvent{Theme: t, ID: id, Font: t.Font(id)})
		return true
	}
	return false
}

// SetColor sets one of the theme's colors, symmetric to SetFont
func (t *Theme) SetColor(id ColorID, color Color) bool {
	if t.typ != TypeUser {
		panic(ErrIllegalMutation)
	}

	if t.data.setColor(id, color) {
		t.registry.NotifyColorChanged(ColorChangedEvent{Theme: t, ID: id, Color: t.Color(id)})
		return true
	}
	return false
}

// String returns the theme's name
func (t *Theme) String() string {
	return t.Name()
}

func checkType(typ Type) {
	if typ != TypeUser && typ != TypePredefined && typ != TypeCustom {
		panic(fmt.Errorf("%w: %d", ErrIllegalType, int(typ)))
	}
}

// defaultValuesListener forwards default palette changes on behalf of its
// owning theme, for exactly the properties the theme has not overridden.
// Re-published events carry the theme's identity and the resolved value, so
// dependent renderers repaint even for properties the theme never customized.
type defaultValuesListener struct {
	theme *Theme
}

func (l *defaultValuesListener) FontChanged(event FontChangedEvent) {
	if !l.theme.data.fontSet(event.ID) {
		l.theme.registry.NotifyFontChanged(FontChangedEvent{
			Theme: l.theme,
			ID:    event.ID,
			Font:  l.theme.Font(event.ID),
		})
	}
}

func (l *defaultValuesListener) ColorChanged(event ColorChangedEvent) {
	if !l.theme.data.colorSet(event.ID) {
		l.theme.registry.NotifyColorChanged(ColorChangedEvent{
			Theme: l.theme,
			ID:    event.ID,
			Color: l.theme.Color(event.ID),
		})
	}
}
