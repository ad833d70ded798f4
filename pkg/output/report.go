package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smathieu/dualpane/pkg/models"
)

// WriteReportFile writes a comparison report to a file in the given format
// ("human" or "json"). Styling is disabled for file output.
func WriteReportFile(report *models.CompareReport, path, format string) error {
	formatter, ok := ByName(format, "", false)
	if !ok {
		return fmt.Errorf("unknown report format: %s (use: human, json)", format)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := formatter.Render(file, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
