package locator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports/mocks"
	"go.trai.ch/exsd/internal/engine/locator"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	bundles *mocks.MockBundleManager
	modules *mocks.MockModuleProvider
	fs      *mocks.MockFileSystem
	sut     *locator.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		bundles: mocks.NewMockBundleManager(ctrl),
		modules: mocks.NewMockModuleProvider(ctrl),
		fs:      mocks.NewMockFileSystem(ctrl),
	}
	f.sut = locator.NewResolver(f.bundles, f.modules, f.fs)
	return f
}

func TestResolve_BundleRoot(t *testing.T) {
	f := newFixture(t)
	f.bundles.EXPECT().Bundle("org.example.core").Return(&domain.Bundle{Root: "/target/core"}, true)
	f.fs.EXPECT().Lookup("/target/core", "schema/actions.exsd").Return("/target/core/schema/actions.exsd", true)

	path, ok := f.sut.Resolve("schema://org.example.core/schema/actions.exsd")
	assert.True(t, ok)
	assert.Equal(t, "/target/core/schema/actions.exsd", path)
}

func TestResolve_SourceBundleFallback(t *testing.T) {
	f := newFixture(t)
	f.bundles.EXPECT().Bundle("org.example.core").Return(&domain.Bundle{
		Root:   "/target/core",
		Source: &domain.Bundle{Root: "/target/core.source"},
	}, true)
	gomock.InOrder(
		f.fs.EXPECT().Lookup("/target/core", "schema/actions.exsd").Return("", false),
		f.fs.EXPECT().Lookup("/target/core.source", "schema/actions.exsd").Return("/target/core.source/schema/actions.exsd", true),
	)

	path, ok := f.sut.Resolve("schema://org.example.core/schema/actions.exsd")
	assert.True(t, ok)
	assert.Equal(t, "/target/core.source/schema/actions.exsd", path)
}

func TestResolve_BundleWithoutFileDoesNotScanModules(t *testing.T) {
	f := newFixture(t)
	f.bundles.EXPECT().Bundle("org.example.core").Return(&domain.Bundle{Root: "/target/core"}, true)
	f.fs.EXPECT().Lookup("/target/core", "schema/missing.exsd").Return("", false)

	_, ok := f.sut.Resolve("schema://org.example.core/schema/missing.exsd")
	assert.False(t, ok)
}

func TestResolve_ProjectModules(t *testing.T) {
	f := newFixture(t)
	f.bundles.EXPECT().Bundle("org.example.local").Return(nil, false)
	f.modules.EXPECT().Modules().Return([]domain.Module{
		{Name: "other", SymbolicName: "org.example.other", ContentRoots: []string{"/ws/other"}},
		{Name: "local", SymbolicName: "org.example.local", ContentRoots: []string{"/ws/local", "/ws/local/res"}},
	})
	gomock.InOrder(
		f.fs.EXPECT().Lookup("/ws/local", "schema/a.exsd").Return("", false),
		f.fs.EXPECT().Lookup("/ws/local/res", "schema/a.exsd").Return("/ws/local/res/schema/a.exsd", true),
	)

	path, ok := f.sut.Resolve("schema://org.example.local/schema/a.exsd")
	assert.True(t, ok)
	assert.Equal(t, "/ws/local/res/schema/a.exsd", path)
}

func TestResolve_NotFound(t *testing.T) {
	f := newFixture(t)
	f.bundles.EXPECT().Bundle("org.example.nowhere").Return(nil, false)
	f.modules.EXPECT().Modules().Return(nil)

	_, ok := f.sut.Resolve("schema://org.example.nowhere/x.exsd")
	assert.False(t, ok)
}

func TestResolve_MalformedLocations(t *testing.T) {
	for _, location := range []string{
		"",
		"org.example.core/schema/a.exsd",
		"platform:/plugin/org.example.core/a.exsd",
		"schema://",
		"schema://org.example.core",
		"schema://org.example.core/",
		"schema:///a.exsd",
	} {
		t.Run(location, func(t *testing.T) {
			f := newFixture(t)
			_, ok := f.sut.Resolve(location)
			assert.False(t, ok)
		})
	}
}
