// Package fs provides file system adapters for walking, hashing and locating schema files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// SchemaExt is the file extension of extension-point schema files.
const SchemaExt = ".exsd"

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, skipping VCS metadata and ignored entries.
// Paths are yielded in lexical order and include root as prefix.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped, the rest of the walk continues.
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return err
			}

			skip, action := w.shouldSkip(d, ignores)
			if action != nil {
				return action
			}
			if skip || d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// WalkSchemas yields every schema file below each of roots, in root order.
// Missing roots are skipped.
func (w *Walker) WalkSchemas(roots ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, root := range roots {
			for path := range w.WalkFiles(root, nil) {
				if !IsSchemaFile(path) {
					continue
				}
				if !yield(path) {
					return
				}
			}
		}
	}
}

// IsSchemaFile reports whether path names a schema file.
func IsSchemaFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SchemaExt)
}

// shouldSkip reports whether the entry is ignored. For ignored directories it
// returns filepath.SkipDir as action instead.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj" || name == ".svn") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
