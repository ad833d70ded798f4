package output

import (
	"fmt"
	"io"
	"time"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/smathieu/dualpane/pkg/models"
)

// HumanFormatter renders a report in human-readable form. Marked entries are
// highlighted with the mark color of the active theme when color is enabled.
type HumanFormatter struct {
	markStyle   lipgloss.Style
	headerStyle lipgloss.Style
	dimStyle    lipgloss.Style
	colored     bool
}

// NewHumanFormatter creates a human-readable formatter. markColor is a hex
// color ("#RRGGBB"); colored disables all styling when false.
func NewHumanFormatter(markColor string, colored bool) *HumanFormatter {
	return &HumanFormatter{
		markStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(markColor)).Bold(true),
		headerStyle: lipgloss.NewStyle().Bold(true),
		dimStyle:    lipgloss.NewStyle().Faint(true),
		colored:     colored,
	}
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// Render writes the report to w
func (f *HumanFormatter) Render(w io.Writer, report *models.CompareReport) error {
	fmt.Fprintf(w, "%s\n", f.header(fmt.Sprintf("Comparing %s <-> %s", report.LeftPath, report.RightPath)))
	fmt.Fprintf(w, "\n")

	f.renderSide(w, "Left", report.LeftPath, report.LeftMarked)
	f.renderSide(w, "Right", report.RightPath, report.RightMarked)

	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Left:     %d entries (%d dirs), %d marked\n",
		report.Stats.LeftEntries, report.Stats.LeftDirs, report.Stats.LeftMarkedCount)
	fmt.Fprintf(w, "  Right:    %d entries (%d dirs), %d marked\n",
		report.Stats.RightEntries, report.Stats.RightDirs, report.Stats.RightMarkedCount)
	fmt.Fprintf(w, "  Duration: %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "  Status:   %s\n", report.Status)

	return nil
}

func (f *HumanFormatter) renderSide(w io.Writer, label, path string, marked []models.MarkedEntry) {
	if len(marked) == 0 {
		fmt.Fprintf(w, "%s (%s): %s\n\n", label, path, f.dim("no differences"))
		return
	}

	fmt.Fprintf(w, "%s (%s):\n", label, path)
	for _, entry := range marked {
		name := entry.Name
		if f.colored {
			name = f.markStyle.Render(name)
		}
		fmt.Fprintf(w, "  %s  %s  %s  %s\n",
			name,
			formatBytes(entry.Size),
			entry.ModTime.Format("2006-01-02 15:04:05"),
			f.dim(reasonLabel(entry.Reason)))
	}
	fmt.Fprintf(w, "\n")
}

func (f *HumanFormatter) header(s string) string {
	if !f.colored {
		return s
	}
	return f.headerStyle.Render(s)
}

func (f *HumanFormatter) dim(s string) string {
	if !f.colored {
		return s
	}
	return f.dimStyle.Render(s)
}

func reasonLabel(reason models.MarkReason) string {
	switch reason {
	case models.MarkMissing:
		return "missing on other side"
	case models.MarkNewer:
		return "newer than other side"
	default:
		return string(reason)
	}
}

// formatBytes renders a byte count with a binary unit suffix
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
