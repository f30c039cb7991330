// Package bundle discovers the bundles of the target platform.
package bundle

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/exsd/internal/adapters/manifest"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
)

var _ ports.BundleManager = (*Manager)(nil)

// pluginsDir is the conventional bundle directory of an installation.
const pluginsDir = "plugins"

// Manager implements ports.BundleManager over exploded bundle directories.
type Manager struct {
	reader *manifest.Reader
	logger ports.Logger

	mu      sync.RWMutex
	bundles map[string]*domain.Bundle
}

// NewManager creates a new Manager with no bundles.
func NewManager(reader *manifest.Reader, logger ports.Logger) *Manager {
	return &Manager{
		reader:  reader,
		logger:  logger,
		bundles: make(map[string]*domain.Bundle),
	}
}

// Scan replaces the known bundles with those found in targets. A target may
// be a bundle itself, a directory of bundles, or an installation with a
// plugins directory. Unreadable manifests are logged and skipped.
func (m *Manager) Scan(targets []string) {
	found := make(map[string]*domain.Bundle)
	var sources []domain.Manifest
	var sourceRoots []string

	add := func(root string) {
		mf, ok, err := m.reader.ReadBundle(root)
		if err != nil {
			m.logger.Error(err)
			return
		}
		if !ok || mf.SymbolicName == "" {
			return
		}
		b := &domain.Bundle{SymbolicName: mf.SymbolicName, Version: mf.Version, Root: root}
		if existing, ok := found[b.SymbolicName]; !ok || compareVersions(b.Version, existing.Version) > 0 {
			found[b.SymbolicName] = b
		}
		if mf.SourceFor != "" {
			sources = append(sources, mf)
			sourceRoots = append(sourceRoots, root)
		}
	}

	for _, target := range targets {
		for _, root := range candidateRoots(target) {
			add(root)
		}
	}

	for i, src := range sources {
		host, ok := found[src.SourceFor]
		if !ok {
			continue
		}
		source, ok := found[src.SymbolicName]
		if !ok || source.Root != sourceRoots[i] {
			continue
		}
		if host.Source == nil || compareVersions(source.Version, host.Source.Version) > 0 {
			host.Source = source
		}
	}

	m.mu.Lock()
	m.bundles = found
	m.mu.Unlock()

	m.logger.Info("found " + strconv.Itoa(len(found)) + " bundles in " + strconv.Itoa(len(targets)) + " target directories")
}

// Bundle returns the bundle with the given symbolic name.
func (m *Manager) Bundle(symbolicName string) (*domain.Bundle, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.bundles[symbolicName]
	if !ok {
		return nil, false
	}
	clone := *b
	return &clone, true
}

// Bundles returns every known bundle, ordered by symbolic name.
func (m *Manager) Bundles() []domain.Bundle {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Bundle, 0, len(m.bundles))
	for _, b := range m.bundles {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b domain.Bundle) int {
		return cmp.Compare(a.SymbolicName, b.SymbolicName)
	})
	return out
}

// candidateRoots lists target, its child directories and the child
// directories of its plugins directory, in lexical order.
func candidateRoots(target string) []string {
	roots := []string{target}
	roots = append(roots, childDirs(target)...)
	roots = append(roots, childDirs(filepath.Join(target, pluginsDir))...)
	return roots
}

func childDirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			dirs = append(dirs, filepath.Join(dir, e.Name()))
		}
	}
	return dirs
}

// compareVersions orders OSGi versions by their numeric major.minor.micro
// segments, then lexically by qualifier.
func compareVersions(a, b string) int {
	as := strings.SplitN(a, ".", 4)
	bs := strings.SplitN(b, ".", 4)
	for i := range 3 {
		if c := cmp.Compare(segment(as, i), segment(bs, i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(qualifier(as), qualifier(bs))
}

func segment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return n
}

func qualifier(parts []string) string {
	if len(parts) < 4 {
		return ""
	}
	return parts[3]
}
