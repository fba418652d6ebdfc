package plan

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a plan file
type Watcher struct {
	path string
}

// NewWatcher creates a Watcher for the plan file at path
func NewWatcher(path string) *Watcher {
	return &Watcher{path: filepath.Clean(path)}
}

// Watch calls onChange every time the plan file is written or recreated,
// until ctx is cancelled. The directory is watched rather than the file so
// editors that replace the file on save are still picked up.
func (w *Watcher) Watch(ctx context.Context, onChange func(), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch plan directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) == w.path && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
