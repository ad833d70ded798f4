package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/smathieu/dualpane/pkg/models"
)

// JSONFormatter renders a report as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

// Render writes the report to w
func (f *JSONFormatter) Render(w io.Writer, report *models.CompareReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
