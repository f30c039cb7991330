package fs_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exsd/internal/adapters/fs"
	"go.trai.ch/exsd/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "src", "main.go"), "package main")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()

	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, []string{"ignored"}) {
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		files[filepath.ToSlash(rel)] = true
	}

	assert.False(t, files[".git/config"], "expected .git/config to be skipped")
	assert.False(t, files["ignored/file"], "expected ignored/file to be skipped")
	assert.True(t, files["src/main.go"])
	assert.True(t, files["README.md"])
}

func TestWalker_WalkSchemas(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(first, "schema", "b.exsd"), "<schema/>")
	writeFile(t, filepath.Join(first, "schema", "a.EXSD"), "<schema/>")
	writeFile(t, filepath.Join(first, "plugin.xml"), "<plugin/>")
	writeFile(t, filepath.Join(second, "c.exsd"), "<schema/>")

	walker := fs.NewWalker()

	var got []string
	for path := range walker.WalkSchemas(first, filepath.Join(first, "missing"), second) {
		got = append(got, filepath.Base(path))
	}

	assert.Equal(t, []string{"a.EXSD", "b.exsd", "c.exsd"}, got)
}

func TestWalker_WalkSchemas_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.exsd"), "")
	writeFile(t, filepath.Join(tmpDir, "b.exsd"), "")

	count := 0
	for range fs.NewWalker().WalkSchemas(tmpDir, tmpDir) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hash.exsd")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher()

	hash1, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")

	_, err = hasher.ComputeFileHash(filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}

func TestHasher_Stamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stamp.exsd")
	writeFile(t, path, "one")

	hasher := fs.NewHasher()

	before, err := hasher.Stamp(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), before.Size)

	writeFile(t, path, "two")
	after, err := hasher.Stamp(path)
	require.NoError(t, err)
	assert.Equal(t, before.Size, after.Size)
	assert.NotEqual(t, before, after, "content change must change the stamp")

	_, err = hasher.Stamp(filepath.Dir(path))
	require.ErrorContains(t, err, domain.ErrPathStatFailed.Error())
}

func TestHasher_ComputeSetHash(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.exsd")
	b := filepath.Join(tmpDir, "b.exsd")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	hasher := fs.NewHasher()

	h1, err := hasher.ComputeSetHash([]string{a, b})
	require.NoError(t, err)
	h2, err := hasher.ComputeSetHash([]string{b, a})
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "order of paths must not matter")

	writeFile(t, b, "changed")
	h3, err := hasher.ComputeSetHash([]string{a, b})
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)

	h4, err := hasher.ComputeSetHash([]string{a})
	require.NoError(t, err)
	assert.NotEqual(t, h3, h4)
}

func TestFileSystem_Lookup(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "schema", "actions.exsd"), "<schema/>")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "schema", "dir.exsd"), 0o750))

	fsys := fs.NewFileSystem(fs.NewHasher())

	path, ok := fsys.Lookup(root, "schema/actions.exsd")
	require.True(t, ok)
	assert.Equal(t, fsys.Canonical(filepath.Join(root, "schema", "actions.exsd")), path)

	tests := []struct {
		name string
		root string
		rel  string
	}{
		{name: "missing file", root: root, rel: "schema/missing.exsd"},
		{name: "directory", root: root, rel: "schema/dir.exsd"},
		{name: "escapes root", root: filepath.Join(root, "schema"), rel: "../schema/actions.exsd"},
		{name: "absolute", root: root, rel: "/etc/passwd"},
		{name: "empty rel", root: root, rel: ""},
		{name: "empty root", root: "", rel: "schema/actions.exsd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := fsys.Lookup(tt.root, tt.rel)
			assert.False(t, ok)
		})
	}
}

func TestFileSystem_CanonicalResolvesSymlinks(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real.exsd")
	link := filepath.Join(root, "link.exsd")
	writeFile(t, target, "<schema/>")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	fsys := fs.NewFileSystem(fs.NewHasher())
	assert.Equal(t, fsys.Canonical(target), fsys.Canonical(link))
	assert.Equal(t, fsys.Canonical(target), fsys.Canonical(filepath.Join(root, ".", "real.exsd")))
}

func TestFileSystem_OpenAndStamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open.exsd")
	writeFile(t, path, "content")

	fsys := fs.NewFileSystem(fs.NewHasher())

	rc, err := fsys.Open(path)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "content", string(data))

	stamp, err := fsys.Stamp(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len("content")), stamp.Size)

	_, err = fsys.Open(path + ".missing")
	require.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}
