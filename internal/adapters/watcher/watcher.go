// Package watcher reports changes to schema files so cached definitions can
// be dropped and re-indexed while the process runs.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	exsdfs "go.trai.ch/exsd/internal/adapters/fs"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

var skippedDirectories = map[string]bool{
	".git":  true,
	".jj":   true,
	".svn":  true,
	".exsd": true,
}

const eventChannelBuffer = 100

// Watcher implements ports.Watcher on fsnotify. Only events for schema files
// are reported; directories created below a watched root are added as they
// appear.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent

	mu      sync.Mutex
	started bool
}

// NewWatcher creates a new file system watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start watches every directory below roots. Roots that do not exist are
// skipped.
func (w *Watcher) Start(ctx context.Context, roots ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return zerr.With(domain.ErrWatchFailed, "reason", "already started")
	}

	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		for dir := range w.directories(root) {
			if err := w.fsWatcher.Add(dir); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
			}
		}
	}

	w.started = true
	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of schema file events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are not watched
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skippedDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			var pending []ports.WatchEvent
			if watchEvent, ok := convertEvent(event); ok {
				pending = append(pending, watchEvent)
			}
			if event.Has(fsnotify.Create) {
				pending = append(pending, w.addCreatedDirectory(event.Name)...)
			}

			for _, watchEvent := range pending {
				select {
				case w.events <- watchEvent:
				case <-ctx.Done():
					return
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, domain.ErrWatchFailed.Error()))
		}
	}
}

// addCreatedDirectory watches a directory tree that appeared below a root and
// reports the schema files it already holds as created.
func (w *Watcher) addCreatedDirectory(path string) []ports.WatchEvent {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skippedDirectories[info.Name()] {
		return nil
	}

	var created []ports.WatchEvent
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable directories are not watched
		}
		if !d.IsDir() {
			if exsdfs.IsSchemaFile(p) {
				created = append(created, ports.WatchEvent{Path: p, Operation: ports.OpCreate})
			}
			return nil
		}
		if p != path && skippedDirectories[d.Name()] {
			return fs.SkipDir
		}
		if err := w.fsWatcher.Add(p); err != nil {
			if errors.Is(err, fsnotify.ErrClosed) {
				return filepath.SkipAll
			}
			w.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", p))
		}
		return nil
	})
	return created
}

// convertEvent maps an fsnotify event on a schema file to a ports.WatchEvent.
// Remove and rename take precedence since the path is gone afterwards.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	if !exsdfs.IsSchemaFile(event.Name) {
		return ports.WatchEvent{}, false
	}

	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
