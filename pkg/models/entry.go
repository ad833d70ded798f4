package models

import (
	"time"
)

// Entry represents one row of a directory listing
type Entry struct {
	// Name is the file name without any path component
	Name string

	// Size in bytes
	Size int64

	// ModTime is the last modification time
	ModTime time.Time

	// IsDir indicates if this is a directory
	IsDir bool
}

// Side identifies one of the two panes in a comparison
type Side string

const (
	// SideLeft is the left pane
	SideLeft Side = "left"
	// SideRight is the right pane
	SideRight Side = "right"
)

// MarkReason explains why an entry was marked during a comparison
type MarkReason string

const (
	// MarkMissing indicates no same-named entry exists on the other side
	MarkMissing MarkReason = "missing"
	// MarkNewer indicates the entry is strictly newer than its counterpart
	MarkNewer MarkReason = "newer"
)
