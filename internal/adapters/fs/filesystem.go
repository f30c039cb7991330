package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct {
	hasher *Hasher
}

// NewFileSystem creates a new FileSystem.
func NewFileSystem(hasher *Hasher) *FileSystem {
	return &FileSystem{hasher: hasher}
}

// Open opens the file at path for reading.
func (f *FileSystem) Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	return file, nil
}

// Stamp returns the current modification state of the file at path.
func (f *FileSystem) Stamp(path string) (domain.FileStamp, error) {
	return f.hasher.Stamp(path)
}

// Lookup resolves the slash-separated rel against root. Paths escaping root are rejected.
func (f *FileSystem) Lookup(root, rel string) (string, bool) {
	if root == "" || rel == "" {
		return "", false
	}
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", false
	}

	path := filepath.Join(root, local)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return f.Canonical(path), true
}

// Canonical returns the absolute, symlink-free form of path. When the path
// cannot be evaluated it falls back to the cleaned absolute path.
func (f *FileSystem) Canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
