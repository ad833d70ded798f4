package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/smathieu/dualpane/pkg/logging"
)

// Watcher reloads the manager's custom themes when the themes directory
// changes on disk. Change notifications flow through the manager's registry
// like any other theme change.
type Watcher struct {
	manager *Manager
	fsw     *fsnotify.Watcher
	logger  logging.Logger
	done    chan struct{}
}

// NewWatcher creates a watcher over the manager's themes directory,
// creating the directory if it does not exist yet
func NewWatcher(manager *Manager, logger logging.Logger) (*Watcher, error) {
	if manager.ThemesDir() == "" {
		return nil, fmt.Errorf("manager has no themes directory configured")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	if err := os.MkdirAll(manager.ThemesDir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create themes directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fsw.Add(manager.ThemesDir()); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch themes directory: %w", err)
	}

	return &Watcher{
		manager: manager,
		fsw:     fsw,
		logger:  logger,
		done:    make(chan struct{}),
	}, nil
}

// Start runs the watch loop until the context is cancelled or the watcher
// is closed. It blocks; run it in its own goroutine for background use.
func (w *Watcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-w.done:
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			ext := filepath.Ext(event.Name)
			if ext != ".yaml" && ext != ".yml" {
				continue
			}

			w.logger.Debug(ctx, "themes directory changed", logging.Fields{
				"path": event.Name,
				"op":   event.Op.String(),
			})
			if err := w.manager.LoadCustomThemes(ctx); err != nil {
				w.logger.Error(ctx, "failed to reload custom themes", err, nil)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(ctx, "theme watcher error", err, nil)
		}
	}
}

// Close stops the watch loop and releases the filesystem watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
