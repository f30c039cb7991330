package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exsd/internal/adapters/manifest"
	"go.trai.ch/exsd/internal/adapters/project"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "META-INF")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MANIFEST.MF"), []byte(content), 0o600))
}

func TestModules_ReadsSymbolicNames(t *testing.T) {
	root := t.TempDir()
	core := filepath.Join(root, "core")
	plain := filepath.Join(root, "plain")
	writeManifest(t, core, "Bundle-SymbolicName: org.example.core;singleton:=true\n")
	require.NoError(t, os.MkdirAll(plain, 0o750))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	modules := project.NewModules(manifest.NewReader(), log, []domain.ModuleConfig{
		{Name: "core", Root: core, ContentRoots: []string{core, filepath.Join(core, "resources")}},
		{Name: "plain", Root: plain, ContentRoots: []string{plain}},
	})

	got := modules.Modules()
	require.Len(t, got, 2)
	assert.Equal(t, "org.example.core", got[0].SymbolicName)
	assert.Equal(t, []string{core, filepath.Join(core, "resources")}, got[0].ContentRoots)
	assert.Equal(t, "plain", got[1].Name)
	assert.Empty(t, got[1].SymbolicName)
}

func TestModules_Reload(t *testing.T) {
	root := t.TempDir()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	modules := project.NewModules(manifest.NewReader(), log, []domain.ModuleConfig{
		{Name: "late", Root: root, ContentRoots: []string{root}},
	})
	assert.Empty(t, modules.Modules()[0].SymbolicName)

	writeManifest(t, root, "Bundle-SymbolicName: org.example.late\n")
	modules.Reload()
	assert.Equal(t, "org.example.late", modules.Modules()[0].SymbolicName)
}

func TestModules_UnreadableManifestIsLogged(t *testing.T) {
	root := t.TempDir()
	// A directory where the manifest file should be cannot be opened for reading.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "META-INF", "MANIFEST.MF"), 0o750))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(1)

	modules := project.NewModules(manifest.NewReader(), log, []domain.ModuleConfig{
		{Name: "broken", Root: root, ContentRoots: []string{root}},
	})
	assert.Empty(t, modules.Modules()[0].SymbolicName)
}
