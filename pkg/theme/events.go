package theme

// FontID identifies a themable font property
type FontID int

const (
	FileTableFont FontID = iota
	ShellFont
	EditorFont
	LocationBarFont
	StatusBarFont

	fontIDCount
)

// ColorID identifies a themable color property
type ColorID int

const (
	FileTableBackground ColorID = iota
	FileTableForeground
	FileTableSelectedBackground
	FileTableSelectedForeground
	FileTableMarkedForeground
	ShellBackground
	ShellForeground
	EditorBackground
	EditorForeground
	LocationBarBackground
	LocationBarForeground
	StatusBarBackground
	StatusBarForeground

	colorIDCount
)

// Font describes a themable font
type Font struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
	Bold   bool   `yaml:"bold,omitempty"`
	Italic bool   `yaml:"italic,omitempty"`
}

// Color is a hex color value in "#RRGGBB" form
type Color string

// FontChangedEvent carries a font change notification.
// Theme is nil when the event originates from the default palette.
type FontChangedEvent struct {
	Theme *Theme
	ID    FontID
	Font  Font
}

// ColorChangedEvent carries a color change notification.
// Theme is nil when the event originates from the default palette.
type ColorChangedEvent struct {
	Theme *Theme
	ID    ColorID
	Color Color
}

// Listener receives theme change notifications
type Listener interface {
	FontChanged(event FontChangedEvent)
	ColorChanged(event ColorChangedEvent)
}

// fontIDNames maps font ids to their stable file-format names
var fontIDNames = map[FontID]string{
	FileTableFont:   "file_table",
	ShellFont:       "shell",
	EditorFont:      "editor",
	LocationBarFont: "location_bar",
	StatusBarFont:   "status_bar",
}

// colorIDNames maps color ids to their stable file-format names
var colorIDNames = map[ColorID]string{
	FileTableBackground:         "file_table_background",
	FileTableForeground:         "file_table_foreground",
	FileTableSelectedBackground: "file_table_selected_background",
	FileTableSelectedForeground: "file_table_selected_foreground",
	FileTableMarkedForeground:   "file_table_marked_foreground",
	ShellBackground:             "shell_background",
	ShellForeground:             "shell_foreground",
	EditorBackground:            "editor_background",
	EditorForeground:            "editor_foreground",
	LocationBarBackground:       "location_bar_background",
	LocationBarForeground:       "location_bar_foreground",
	StatusBarBackground:         "status_bar_background",
	StatusBarForeground:         "status_bar_foreground",
}

// String returns the stable file-format name of the font id
func (id FontID) String() string {
	if name, ok := fontIDNames[id]; ok {
		return name
	}
	return "unknown"
}

// String returns the stable file-format name of the color id
func (id ColorID) String() string {
	if name, ok := colorIDNames[id]; ok {
		return name
	}
	return "unknown"
}

// ParseFontID resolves a file-format name to a font id
func ParseFontID(name string) (FontID, bool) {
	for id, n := range fontIDNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// ParseColorID resolves a file-format name to a color id
func ParseColorID(name string) (ColorID, bool) {
	for id, n := range colorIDNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// FontIDs returns all font ids in declaration order
func FontIDs() []FontID {
	ids := make([]FontID, 0, fontIDCount)
	for id := FontID(0); id < fontIDCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// ColorIDs returns all color ids in declaration order
func ColorIDs() []ColorID {
	ids := make([]ColorID, 0, colorIDCount)
	for id := ColorID(0); id < colorIDCount; id++ {
		ids = append(ids, id)
	}
	return ids
}
