package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed away from its path.
	OpRename
)

// String returns the lowercase operation name.
func (op WatchOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Gone reports whether the operation leaves nothing at the event path.
func (op WatchOp) Gone() bool {
	return op == OpRemove || op == OpRename
}

// WatchEvent is a change to a schema file.
type WatchEvent struct {
	// Path is the absolute path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher reports changes to schema files below a set of roots.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given directories recursively.
	Start(ctx context.Context, roots ...string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of schema file events. It ends when the
	// watcher stops or the context passed to Start is done.
	Events() iter.Seq[WatchEvent]
}
