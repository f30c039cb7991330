package bundle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exsd/internal/adapters/bundle"
	"go.trai.ch/exsd/internal/adapters/manifest"
	"go.trai.ch/exsd/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeBundle(t *testing.T, root, manifestContent string) {
	t.Helper()
	dir := filepath.Join(root, "META-INF")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MANIFEST.MF"), []byte(manifestContent), 0o600))
}

func newManager(t *testing.T) (*bundle.Manager, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return bundle.NewManager(manifest.NewReader(), log), log
}

func TestManager_Scan(t *testing.T) {
	target := t.TempDir()
	install := t.TempDir()

	writeBundle(t, filepath.Join(target, "org.example.core_1.0.0"),
		"Bundle-SymbolicName: org.example.core;singleton:=true\nBundle-Version: 1.0.0\n")
	writeBundle(t, filepath.Join(target, "org.example.core_1.10.0"),
		"Bundle-SymbolicName: org.example.core\nBundle-Version: 1.10.0\n")
	writeBundle(t, filepath.Join(target, "org.example.core.source_1.10.0"),
		"Bundle-SymbolicName: org.example.core.source\nBundle-Version: 1.10.0\n"+
			"Eclipse-SourceBundle: org.example.core;version=\"1.10.0\"\n")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "not-a-bundle"), 0o750))
	writeBundle(t, filepath.Join(install, "plugins", "org.eclipse.ui_3.0.0"),
		"Bundle-SymbolicName: org.eclipse.ui\nBundle-Version: 3.0.0\n")

	m, _ := newManager(t)
	m.Scan([]string{target, install, filepath.Join(target, "missing")})

	core, ok := m.Bundle("org.example.core")
	require.True(t, ok)
	assert.Equal(t, "1.10.0", core.Version)
	assert.Equal(t, filepath.Join(target, "org.example.core_1.10.0"), core.Root)
	require.NotNil(t, core.Source)
	assert.Equal(t, filepath.Join(target, "org.example.core.source_1.10.0"), core.Source.Root)

	ui, ok := m.Bundle("org.eclipse.ui")
	require.True(t, ok)
	assert.Nil(t, ui.Source)

	_, ok = m.Bundle("org.example.missing")
	assert.False(t, ok)

	var names []string
	for _, b := range m.Bundles() {
		names = append(names, b.SymbolicName)
	}
	assert.Equal(t, []string{"org.eclipse.ui", "org.example.core", "org.example.core.source"}, names)
}

func TestManager_ScanReplacesBundles(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeBundle(t, filepath.Join(first, "a"), "Bundle-SymbolicName: a\n")
	writeBundle(t, filepath.Join(second, "b"), "Bundle-SymbolicName: b\n")

	m, _ := newManager(t)
	m.Scan([]string{first})
	_, ok := m.Bundle("a")
	require.True(t, ok)

	m.Scan([]string{second})
	_, ok = m.Bundle("a")
	assert.False(t, ok)
	_, ok = m.Bundle("b")
	assert.True(t, ok)
}

func TestManager_TargetIsBundle(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, root, "Bundle-SymbolicName: self\n")

	m, _ := newManager(t)
	m.Scan([]string{root})

	b, ok := m.Bundle("self")
	require.True(t, ok)
	assert.Equal(t, root, b.Root)
}

func TestManager_BundleReturnsCopy(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, filepath.Join(root, "a"), "Bundle-SymbolicName: a\n")

	m, _ := newManager(t)
	m.Scan([]string{root})

	b, ok := m.Bundle("a")
	require.True(t, ok)
	b.Root = "changed"

	again, _ := m.Bundle("a")
	assert.Equal(t, filepath.Join(root, "a"), again.Root)
}
