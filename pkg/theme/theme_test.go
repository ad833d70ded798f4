package theme

import (
	"errors"
	"testing"
)

// recorder collects dispatched theme change events
type recorder struct {
	fontEvents  []FontChangedEvent
	colorEvents []ColorChangedEvent
}

func (r *recorder) FontChanged(event FontChangedEvent)   { r.fontEvents = append(r.fontEvents, event) }
func (r *recorder) ColorChanged(event ColorChangedEvent) { r.colorEvents = append(r.colorEvents, event) }

// newTestTheme builds a theme wired to fresh collaborators
func newTestTheme(t *testing.T, typ Type, name string) (*Theme, *Registry, *Defaults) {
	t.Helper()
	registry := NewRegistry()
	defaults := NewDefaults()
	theme := New(registry, defaults, typ, name, func(key string) string { return key })
	return theme, registry, defaults
}

func TestTheme_SetFont(t *testing.T) {
	theme, registry, _ := newTestTheme(t, TypeUser, "")
	rec := &recorder{}
	registry.Subscribe(rec)

	font := Font{Family: "Iosevka", Size: 14}

	t.Run("NewValueEmitsOneEvent", func(t *testing.T) {
		if !theme.SetFont(FileTableFont, font) {
			t.Error("SetFont returned false, want true for a new value")
		}
		if len(rec.fontEvents) != 1 {
			t.Fatalf("font events = %d, want 1", len(rec.fontEvents))
		}
		event := rec.fontEvents[0]
		if event.Theme != theme {
			t.Error("event carries wrong theme")
		}
		if event.ID != FileTableFont {
			t.Errorf("event id = %s, want %s", event.ID, FileTableFont)
		}
		if event.Font != font {
			t.Errorf("event font = %+v, want %+v", event.Font, font)
		}
	})

	t.Run("SameValueEmitsNone", func(t *testing.T) {
		if theme.SetFont(FileTableFont, font) {
			t.Error("SetFont returned true, want false for an unchanged value")
		}
		if len(rec.fontEvents) != 1 {
			t.Errorf("font events = %d, want still 1", len(rec.fontEvents))
		}
	})
}

func TestTheme_SetColor_NonUserPanics(t *testing.T) {
	theme, registry, _ := newTestTheme(t, TypePredefined, "Midnight")
	rec := &recorder{}
	registry.Subscribe(rec)

	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("SetColor on a predefined theme did not panic")
			}
			err, ok := r.(error)
			if !ok || !errors.Is(err, ErrIllegalMutation) {
				t.Fatalf("panic value = %v, want ErrIllegalMutation", r)
			}
		}()
		theme.SetColor(FileTableBackground, "#000000")
	}()

	if theme.ColorSet(FileTableBackground) {
		t.Error("property bag was mutated by a rejected SetColor")
	}
	if len(rec.colorEvents) != 0 {
		t.Errorf("color events = %d, want 0", len(rec.colorEvents))
	}
}

func TestTheme_SetType(t *testing.T) {
	t.Run("IllegalTypePanics", func(t *testing.T) {
		theme, _, _ := newTestTheme(t, TypeCustom, "x")

		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("SetType with an unknown type did not panic")
			}
			err, ok := r.(error)
			if !ok || !errors.Is(err, ErrIllegalType) {
				t.Fatalf("panic value = %v, want ErrIllegalType", r)
			}
		}()
		theme.SetType(Type(42))
	})

	t.Run("UserResetsName", func(t *testing.T) {
		theme, _, _ := newTestTheme(t, TypeCustom, "Solarized")

		theme.SetType(TypeUser)
		if !theme.CanModify() {
			t.Error("CanModify() = false after SetType(TypeUser)")
		}
		// Name was reset, so it is lazily re-derived
		if got := theme.Name(); got != customThemeNameKey {
			t.Errorf("Name() = %q, want lazily translated %q", got, customThemeNameKey)
		}
	})
}

func TestTheme_LazyName(t *testing.T) {
	registry := NewRegistry()
	defaults := NewDefaults()

	var translations int
	theme := New(registry, defaults, TypeUser, "", func(key string) string {
		translations++
		return "Custom theme"
	})

	first := theme.Name()
	second := theme.Name()

	if first != "Custom theme" || second != first {
		t.Errorf("Name() = %q then %q, want stable %q", first, second, "Custom theme")
	}
	if translations != 1 {
		t.Errorf("translate calls = %d, want 1", translations)
	}
}

func TestTheme_CanModify(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{TypeUser, true},
		{TypePredefined, false},
		{TypeCustom, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			theme, _, _ := newTestTheme(t, tt.typ, "name")
			if theme.CanModify() != tt.want {
				t.Errorf("CanModify() = %v, want %v", !tt.want, tt.want)
			}
		})
	}
}

func TestTheme_DefaultsPropagation(t *testing.T) {
	theme, registry, defaults := newTestTheme(t, TypeUser, "")
	rec := &recorder{}
	registry.Subscribe(rec)

	t.Run("UnsetPropertyForwards", func(t *testing.T) {
		if !defaults.SetColor(StatusBarBackground, "#222222") {
			t.Fatal("defaults.SetColor reported no change")
		}
		if len(rec.colorEvents) != 1 {
			t.Fatalf("color events = %d, want 1", len(rec.colorEvents))
		}
		event := rec.colorEvents[0]
		if event.Theme != theme {
			t.Error("forwarded event does not carry the owning theme")
		}
		if event.Color != "#222222" {
			t.Errorf("forwarded color = %s, want #222222", event.Color)
		}
	})

	t.Run("OverriddenPropertyDoesNotForward", func(t *testing.T) {
		theme.SetColor(FileTableForeground, "#ffffff")
		events := len(rec.colorEvents)

		defaults.SetColor(FileTableForeground, "#123456")
		if len(rec.colorEvents) != events {
			t.Errorf("color events = %d, want %d (override suppresses forwarding)",
				len(rec.colorEvents), events)
		}
	})

	t.Run("ClosedThemeStopsForwarding", func(t *testing.T) {
		theme.Close()
		events := len(rec.colorEvents)

		defaults.SetColor(StatusBarForeground, "#654321")
		if len(rec.colorEvents) != events {
			t.Errorf("color events = %d, want %d after Close", len(rec.colorEvents), events)
		}
	})
}

func TestRegistry_Subscriptions(t *testing.T) {
	registry := NewRegistry()

	first := &recorder{}
	second := &recorder{}
	sub := registry.Subscribe(first)
	registry.Subscribe(second)

	if registry.Len() != 2 {
		t.Errorf("Len() = %d, want 2", registry.Len())
	}

	registry.NotifyColorChanged(ColorChangedEvent{ID: ShellBackground, Color: "#000000"})
	if len(first.colorEvents) != 1 || len(second.colorEvents) != 1 {
		t.Errorf("events = %d / %d, want 1 / 1", len(first.colorEvents), len(second.colorEvents))
	}

	sub.Cancel()
	sub.Cancel() // cancelling twice is a no-op

	registry.NotifyColorChanged(ColorChangedEvent{ID: ShellBackground, Color: "#111111"})
	if len(first.colorEvents) != 1 {
		t.Errorf("cancelled listener received %d events, want 1", len(first.colorEvents))
	}
	if len(second.colorEvents) != 2 {
		t.Errorf("active listener received %d events, want 2", len(second.colorEvents))
	}
}
