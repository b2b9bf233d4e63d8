package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch follows an overrides file and sends a freshly loaded snapshot to
// the returned channel whenever the file changes. Snapshots that fail to
// load (mid-edit saves, parse errors) are skipped; the previous snapshot
// stays current. The channel is closed when the context is cancelled.
//
// The initial load is delivered before any file events, so callers always
// receive at least one snapshot from a valid file.
func Watch(ctx context.Context, path string) (<-chan *Overrides, error) {
	initial, err := Load(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory (more reliable than watching the file directly,
	// editors often replace rather than write in place)
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	ch := make(chan *Overrides, 1)
	ch <- initial

	go func() {
		defer close(ch)
		defer watcher.Close()

		baseName := filepath.Base(path)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != baseName {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				o, err := Load(path)
				if err != nil {
					continue
				}
				select {
				case ch <- o:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Usually recoverable, keep watching
			}
		}
	}()

	return ch, nil
}
