package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exsd/internal/adapters/config"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	t.Setenv(domain.ConfigEnvVar, "")
	root := t.TempDir()
	path := writeConfig(t, root, `
project: tooling
modules:
  - name: core
    root: plugins/core
    contentRoots: [".", "resources"]
  - root: plugins/ui
target:
  - target/platform
  - /opt/eclipse/plugins
index:
  path: build/index.db
cache:
  size: 0
prime:
  parallelism: 3
log:
  level: DEBUG
`)

	cfg, err := newLoader(t).Load(root)
	require.NoError(t, err)

	assert.Equal(t, "tooling", cfg.Project)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, filepath.Join(root, "build", "index.db"), cfg.IndexPath)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.Equal(t, 3, cfg.PrimeParallelism)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{
		filepath.Join(root, "target", "platform"),
		filepath.Clean("/opt/eclipse/plugins"),
	}, cfg.Targets)

	require.Len(t, cfg.Modules, 2)
	core := cfg.Modules[0]
	assert.Equal(t, "core", core.Name)
	assert.Equal(t, filepath.Join(root, "plugins", "core"), core.Root)
	assert.Equal(t, []string{
		filepath.Join(root, "plugins", "core"),
		filepath.Join(root, "plugins", "core", "resources"),
	}, core.ContentRoots)

	ui := cfg.Modules[1]
	assert.Equal(t, "ui", ui.Name)
	assert.Equal(t, []string{filepath.Join(root, "plugins", "ui")}, ui.ContentRoots)
}

func TestLoad_DiscoversParentConfig(t *testing.T) {
	t.Setenv(domain.ConfigEnvVar, "")
	root := t.TempDir()
	writeConfig(t, root, "project: parent\n")
	deep := filepath.Join(root, "plugins", "core", "schema")
	require.NoError(t, os.MkdirAll(deep, 0o750))

	cfg, err := newLoader(t).Load(deep)
	require.NoError(t, err)
	assert.Equal(t, "parent", cfg.Project)
	assert.Equal(t, root, cfg.Root)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(domain.ConfigEnvVar, "")
	root := t.TempDir()

	cfg, err := newLoader(t).Load(root)
	require.NoError(t, err)

	assert.Empty(t, cfg.Source)
	assert.Equal(t, filepath.Base(root), cfg.Project)
	assert.Equal(t, filepath.Join(root, ".exsd", "index.db"), cfg.IndexPath)
	assert.Equal(t, domain.DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, runtime.NumCPU(), cfg.PrimeParallelism)
	assert.Equal(t, "info", cfg.LogLevel)
	require.Len(t, cfg.Modules, 1)
	assert.Equal(t, root, cfg.Modules[0].Root)
	assert.Equal(t, []string{root}, cfg.Modules[0].ContentRoots)
}

func TestLoad_EnvOverride(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "project: discovered\n")
	other := filepath.Join(t.TempDir(), "custom")
	explicit := writeConfig(t, other, "project: explicit\n")
	t.Setenv(domain.ConfigEnvVar, explicit)

	cfg, err := newLoader(t).Load(root)
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.Project)
	assert.Equal(t, other, cfg.Root)
}

func TestLoad_EnvOverrideMissingFile(t *testing.T) {
	t.Setenv(domain.ConfigEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := newLoader(t).Load(t.TempDir())
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid yaml", content: "modules: [", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown field", content: "projekt: typo\n", wantErr: domain.ErrConfigParseFailed},
		{name: "negative cache", content: "cache:\n  size: -1\n", wantErr: domain.ErrInvalidConfig},
		{name: "negative parallelism", content: "prime:\n  parallelism: -2\n", wantErr: domain.ErrInvalidConfig},
		{name: "bad log level", content: "log:\n  level: loud\n", wantErr: domain.ErrInvalidConfig},
		{
			name:    "duplicate module",
			content: "modules:\n  - name: a\n    root: x\n  - name: a\n    root: y\n",
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(domain.ConfigEnvVar, "")
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			_, err := newLoader(t).Load(root)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Setenv(domain.ConfigEnvVar, "")
	root := t.TempDir()
	writeConfig(t, root, "")

	cfg, err := newLoader(t).Load(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(root), cfg.Project)
}
