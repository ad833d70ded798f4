package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/smathieu/dualpane/internal/platform"
	"github.com/smathieu/dualpane/pkg/compare"
	"github.com/smathieu/dualpane/pkg/logging"
	"github.com/smathieu/dualpane/pkg/models"
	"github.com/smathieu/dualpane/pkg/output"
	"github.com/smathieu/dualpane/pkg/storage"
	"github.com/smathieu/dualpane/pkg/theme"
)

// CompareFlags holds compare command flag values
type CompareFlags struct {
	Left         string
	Right        string
	Output       string
	Report       string
	ReportFormat string
	Progress     bool
	Hidden       bool
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two folder listings and mark the differences",
		Long: `Compare the listings of two folders the way a dual-pane view would:
a file is marked when it is missing on the other side or strictly newer
than its same-named counterpart. Directories are never marked. Exits with
code 1 when any entry is marked.`,
		RunE: runCompare,
	}

	cmd.Flags().StringVarP(&compareFlags.Left, "left", "l", "", "left pane directory (required)")
	cmd.Flags().StringVarP(&compareFlags.Right, "right", "r", "", "right pane directory (required)")
	cmd.MarkFlagRequired("left")
	cmd.MarkFlagRequired("right")

	cmd.Flags().StringVarP(&compareFlags.Output, "output", "o", "", "output format: human, json")
	cmd.Flags().StringVar(&compareFlags.Report, "report", "", "write comparison report to file")
	cmd.Flags().StringVar(&compareFlags.ReportFormat, "report-format", "json", "report file format: human, json")
	cmd.Flags().BoolVar(&compareFlags.Progress, "progress", false, "show a progress bar while marking")
	cmd.Flags().BoolVar(&compareFlags.Hidden, "hidden", false, "include hidden entries in the listings")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateCompareFlags(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if compareFlags.Output != "" {
		cfg.Output.Format = compareFlags.Output
	}
	if compareFlags.Progress {
		cfg.Output.Progress = true
	}
	if compareFlags.Hidden {
		cfg.Compare.IncludeHidden = true
	}
	if globalFlags.Quiet {
		cfg.Output.Quiet = true
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	manager, err := newThemeManager(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load themes: %w", err)
	}

	left, err := storage.NewLocal(compareFlags.Left)
	if err != nil {
		return fmt.Errorf("failed to open left pane: %w", err)
	}
	defer left.Close()

	right, err := storage.NewLocal(compareFlags.Right)
	if err != nil {
		return fmt.Errorf("failed to open right pane: %w", err)
	}
	defer right.Close()

	startTime := time.Now()

	leftListing, err := buildListing(ctx, left, cfg.Compare.IncludeHidden)
	if err != nil {
		return fmt.Errorf("failed to list left pane: %w", err)
	}
	rightListing, err := buildListing(ctx, right, cfg.Compare.IncludeHidden)
	if err != nil {
		return fmt.Errorf("failed to list right pane: %w", err)
	}

	logger.Info(ctx, "panes listed", logging.Fields{
		"left":          leftListing.Path(),
		"right":         rightListing.Path(),
		"left_entries":  leftListing.Len(),
		"right_entries": rightListing.Len(),
	})

	var progress compare.ProgressFunc
	var bar *pb.ProgressBar
	if cfg.Output.Progress && !cfg.Output.Quiet {
		bar = pb.StartNew(leftListing.Len() + rightListing.Len())
		progress = func(done, total int) {
			bar.SetCurrent(int64(done))
		}
	}

	compare.ComparePanesWithProgress(leftListing, rightListing, progress)
	if bar != nil {
		bar.Finish()
	}

	report := buildReport(leftListing, rightListing, startTime)

	logger.Info(ctx, "comparison complete", logging.Fields{
		"report_id":    report.ReportID,
		"left_marked":  report.Stats.LeftMarkedCount,
		"right_marked": report.Stats.RightMarkedCount,
		"status":       string(report.Status),
	})

	if !cfg.Output.Quiet {
		markColor := manager.CurrentTheme().Color(theme.FileTableMarkedForeground)
		colored := cfg.Output.Color && cfg.Output.Format == "human"

		formatter, ok := output.ByName(cfg.Output.Format, string(markColor), colored)
		if !ok {
			return fmt.Errorf("unknown output format: %s (use: human, json)", cfg.Output.Format)
		}
		if err := formatter.Render(os.Stdout, report); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}

	if compareFlags.Report != "" {
		if err := output.WriteReportFile(report, compareFlags.Report, compareFlags.ReportFormat); err != nil {
			return fmt.Errorf("failed to write report file: %w", err)
		}
	}

	os.Exit(report.Status.ExitCode())
	return nil
}

// validateCompareFlags validates the compare command flags
func validateCompareFlags() error {
	for _, path := range []string{compareFlags.Left, compareFlags.Right} {
		if err := platform.ValidatePath(path); err != nil {
			return err
		}
	}
	compareFlags.Left = platform.NormalizePath(compareFlags.Left)
	compareFlags.Right = platform.NormalizePath(compareFlags.Right)

	for _, path := range []string{compareFlags.Left, compareFlags.Right} {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		if err != nil {
			return fmt.Errorf("failed to access path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("path is not a directory: %s", path)
		}
	}

	leftAbs, err := filepath.Abs(compareFlags.Left)
	if err != nil {
		return fmt.Errorf("failed to resolve left path: %w", err)
	}
	rightAbs, err := filepath.Abs(compareFlags.Right)
	if err != nil {
		return fmt.Errorf("failed to resolve right path: %w", err)
	}
	if leftAbs == rightAbs {
		return fmt.Errorf("left and right cannot be the same directory: %s", leftAbs)
	}

	return nil
}

// buildListing lists one pane's directory into a comparison listing
func buildListing(ctx context.Context, backend *storage.Local, includeHidden bool) (*compare.Listing, error) {
	infos, err := backend.List(ctx, ".")
	if err != nil {
		return nil, err
	}

	if !includeHidden {
		visible := infos[:0]
		for _, info := range infos {
			if strings.HasPrefix(info.Name, ".") {
				continue
			}
			visible = append(visible, info)
		}
		infos = visible
	}

	return compare.NewListing(backend.Root(), storage.Entries(infos)), nil
}

// buildReport assembles the comparison report from two marked listings
func buildReport(left, right *compare.Listing, startTime time.Time) *models.CompareReport {
	endTime := time.Now()

	report := &models.CompareReport{
		ReportID:    uuid.New().String(),
		LeftPath:    left.Path(),
		RightPath:   right.Path(),
		StartTime:   startTime,
		EndTime:     endTime,
		Duration:    endTime.Sub(startTime),
		LeftMarked:  markedEntries(left),
		RightMarked: markedEntries(right),
	}

	report.Stats = models.CompareStats{
		LeftEntries:      left.Len(),
		RightEntries:     right.Len(),
		LeftDirs:         countDirs(left),
		RightDirs:        countDirs(right),
		LeftMarkedCount:  len(report.LeftMarked),
		RightMarkedCount: len(report.RightMarked),
	}

	if report.Stats.LeftMarkedCount == 0 && report.Stats.RightMarkedCount == 0 {
		report.Status = models.StatusIdentical
	} else {
		report.Status = models.StatusDiffers
	}

	return report
}

// markedEntries collects a listing's marked entries in listing order
func markedEntries(listing *compare.Listing) []models.MarkedEntry {
	var marked []models.MarkedEntry
	for i := 0; i < listing.Len(); i++ {
		reason, ok := listing.MarkReason(i)
		if !ok {
			continue
		}
		entry := listing.EntryAt(i)
		marked = append(marked, models.MarkedEntry{
			Name:    entry.Name,
			Size:    entry.Size,
			ModTime: entry.ModTime,
			Reason:  reason,
		})
	}
	return marked
}

func countDirs(listing *compare.Listing) int {
	count := 0
	for i := 0; i < listing.Len(); i++ {
		if listing.EntryAt(i).IsDir {
			count++
		}
	}
	return count
}
