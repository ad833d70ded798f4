package output

import (
	"io"

	"github.com/smathieu/dualpane/pkg/models"
)

// Formatter defines the interface for rendering comparison reports
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Render writes the report to w
	Render(w io.Writer, report *models.CompareReport) error

	// Name returns the formatter name
	Name() string
}

// ByName returns the formatter registered under the given name.
// markColor is the hex color used for marked entries by the human formatter.
func ByName(name string, markColor string, colored bool) (Formatter, bool) {
	switch name {
	case "human":
		return NewHumanFormatter(markColor, colored), true
	case "json":
		return NewJSONFormatter(), true
	default:
		return nil, false
	}
}
