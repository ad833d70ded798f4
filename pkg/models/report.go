package models

import (
	"time"
)

// CompareReport represents the results of a folder comparison
type CompareReport struct {
	// Operation details
	ReportID  string `json:"report_id"`
	LeftPath  string `json:"left_path"`
	RightPath string `json:"right_path"`

	// Timing
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`

	// Statistics
	Stats CompareStats `json:"stats"`

	// Marked entries per side
	LeftMarked  []MarkedEntry `json:"left_marked"`
	RightMarked []MarkedEntry `json:"right_marked"`

	// Overall status
	Status CompareStatus `json:"status"`
}

// MarkedEntry describes a single marked entry in a report
type MarkedEntry struct {
	Name    string     `json:"name"`
	Size    int64      `json:"size"`
	ModTime time.Time  `json:"mod_time"`
	Reason  MarkReason `json:"reason"`
}

// CompareStats holds comparison metrics
type CompareStats struct {
	// Entries scanned per side (files and directories)
	LeftEntries  int `json:"left_entries"`
	RightEntries int `json:"right_entries"`

	// Directories per side (never marked)
	LeftDirs  int `json:"left_dirs"`
	RightDirs int `json:"right_dirs"`

	// Marked entries per side
	LeftMarkedCount  int `json:"left_marked_count"`
	RightMarkedCount int `json:"right_marked_count"`
}

// CompareStatus represents the overall result
type CompareStatus string

const (
	// StatusIdentical indicates no entry was marked on either side
	StatusIdentical CompareStatus = "identical"
	// StatusDiffers indicates at least one entry was marked
	StatusDiffers CompareStatus = "differs"
	// StatusFailed indicates the comparison could not be performed
	StatusFailed CompareStatus = "failed"
)

// ExitCode returns the appropriate process exit code for the status
func (s CompareStatus) ExitCode() int {
	switch s {
	case StatusIdentical:
		return 0
	case StatusDiffers:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}
