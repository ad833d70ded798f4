package storage

import (
	"context"
	"time"

	"github.com/smathieu/dualpane/pkg/models"
)

// FileInfo represents metadata about a file or directory
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// Entry converts the metadata to a comparison entry
func (fi FileInfo) Entry() models.Entry {
	return models.Entry{
		Name:    fi.Name,
		Size:    fi.Size,
		ModTime: fi.ModTime,
		IsDir:   fi.IsDir,
	}
}

// Backend defines the interface for directory listing providers
// Implementations include the local filesystem; network shares would
// implement the same surface.
type Backend interface {
	// List returns the entries of the directory at path, in name order.
	// Listing is a single level deep, matching what one pane displays.
	List(ctx context.Context, path string) ([]FileInfo, error)

	// Stat returns metadata for a single path
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Exists checks if a file or directory exists
	Exists(ctx context.Context, path string) (bool, error)

	// Close releases any resources held by the backend
	Close() error
}

// Entries converts a listing to comparison entries
func Entries(infos []FileInfo) []models.Entry {
	entries := make([]models.Entry, len(infos))
	for i, info := range infos {
		entries[i] = info.Entry()
	}
	return entries
}
