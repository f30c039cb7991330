package ports

import (
	"io"

	"go.trai.ch/exsd/internal/core/domain"
)

// FileSystem provides the file access the resolver and cache need.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Open opens the file at path for reading.
	Open(path string) (io.ReadCloser, error)
	// Stamp returns the current modification state of the file at path.
	Stamp(path string) (domain.FileStamp, error)
	// Lookup resolves a slash-separated relative path against root.
	// It returns the canonical path and true when a regular file exists there.
	Lookup(root, rel string) (string, bool)
	// Canonical returns the canonical form of path used as cache key.
	Canonical(path string) string
}
