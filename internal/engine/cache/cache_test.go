package cache_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exsd/internal/adapters/exsd"
	"go.trai.ch/exsd/internal/adapters/fs"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports/mocks"
	"go.trai.ch/exsd/internal/engine/cache"
	"go.uber.org/mock/gomock"
)

func schemaDoc(id string) string {
	return `<schema><annotation><appinfo><meta.schema plugin="org.example" id="` + id +
		`" name="Test"/></appinfo></annotation><element name="extension"/></schema>`
}

// countingParser counts parses and can hold them until released.
type countingParser struct {
	calls atomic.Int32
	gate  chan struct{}
}

func (p *countingParser) Parse(r io.Reader) (*domain.ExtensionPointDefinition, error) {
	p.calls.Add(1)
	if p.gate != nil {
		<-p.gate
	}
	return exsd.Parse(r)
}

type fixture struct {
	index    *mocks.MockDefinitionIndex
	locator  *mocks.MockSchemaLocator
	logger   *mocks.MockLogger
	observer *mocks.MockCacheObserver
	parser   *countingParser
	fs       *fs.FileSystem
	dir      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		index:    mocks.NewMockDefinitionIndex(ctrl),
		locator:  mocks.NewMockSchemaLocator(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		observer: mocks.NewMockCacheObserver(ctrl),
		parser:   &countingParser{},
		fs:       fs.NewFileSystem(fs.NewHasher()),
		dir:      t.TempDir(),
	}
	f.observer.EXPECT().ObserveLookup(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) cache(size int) *cache.Cache {
	return cache.New(cache.Options{
		Index:    f.index,
		Locator:  f.locator,
		Parser:   f.parser,
		FS:       f.fs,
		Logger:   f.logger,
		Observer: f.observer,
		Size:     size,
	})
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGet_ComputedAndMemoised(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	path := f.write(t, "a.exsd", schemaDoc("a"))
	c := f.cache(16)

	assert.Equal(t, domain.TierUnresolved, c.State(path))

	first, ok := c.Get(path)
	require.True(t, ok)
	assert.Equal(t, "org.example.a", first.Point())
	assert.Equal(t, domain.TierComputed, c.State(path))

	second, ok := c.Get(path)
	require.True(t, ok)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), f.parser.calls.Load())
}

func TestGet_RecomputesWhenFileChanges(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	path := f.write(t, "a.exsd", schemaDoc("a"))
	c := f.cache(16)

	first, ok := c.Get(path)
	require.True(t, ok)

	f.write(t, "a.exsd", schemaDoc("b"))
	second, ok := c.Get(path)
	require.True(t, ok)
	assert.Equal(t, "org.example.a", first.Point())
	assert.Equal(t, "org.example.b", second.Point())
	assert.Equal(t, int32(2), f.parser.calls.Load())
}

func TestClearCache_ForcesReparse(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	path := f.write(t, "a.exsd", schemaDoc("a"))
	c := f.cache(16)

	first, ok := c.Get(path)
	require.True(t, ok)

	c.ClearCache()
	assert.Equal(t, domain.TierUnresolved, c.State(path))

	second, ok := c.Get(path)
	require.True(t, ok)
	assert.NotSame(t, first, second)
	assert.True(t, first.Equal(second))
	assert.Equal(t, int32(2), f.parser.calls.Load())
}

func TestGet_IndexedThenLastKnownGood(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "a.exsd", schemaDoc("a"))
	key := f.fs.Canonical(path)
	indexed := &domain.ExtensionPointDefinition{Plugin: "org.example", ID: "indexed"}
	c := f.cache(16)

	f.index.EXPECT().Ready().Return(true)
	f.index.EXPECT().Read(key).Return(indexed, nil)

	def, ok := c.Get(path)
	require.True(t, ok)
	assert.Same(t, indexed, def)
	assert.Equal(t, domain.TierIndexed, c.State(path))

	// The index starts rebuilding: the last indexed value is served.
	f.index.EXPECT().Ready().Return(false)
	def, ok = c.Get(path)
	require.True(t, ok)
	assert.Same(t, indexed, def)
	assert.Equal(t, domain.TierStale, c.State(path))
	assert.Zero(t, f.parser.calls.Load())

	// Clearing forgets the last known good value and falls through to parsing.
	c.ClearCache()
	f.index.EXPECT().Ready().Return(false)
	def, ok = c.Get(path)
	require.True(t, ok)
	assert.Equal(t, "org.example.a", def.Point())
	assert.Equal(t, domain.TierComputed, c.State(path))
}

func TestGet_ChangedFileIsNotServedFromLastKnownGood(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "a.exsd", schemaDoc("a"))
	key := f.fs.Canonical(path)
	indexed := &domain.ExtensionPointDefinition{Plugin: "org.example", ID: "a"}
	c := f.cache(16)

	f.index.EXPECT().Ready().Return(true)
	f.index.EXPECT().Read(key).Return(indexed, nil)
	def, ok := c.Get(path)
	require.True(t, ok)
	assert.Same(t, indexed, def)

	// The index refuses records whose content hash no longer matches.
	f.write(t, "a.exsd", schemaDoc("edited"))
	f.index.EXPECT().Ready().Return(true)
	f.index.EXPECT().Read(key).Return(nil, nil)
	edited, ok := c.Get(path)
	require.True(t, ok)
	assert.Equal(t, "org.example.edited", edited.Point())
	assert.Equal(t, domain.TierComputed, c.State(path))

	// A later rebuild does not bring the old definition back.
	f.index.EXPECT().Ready().Return(false)
	again, ok := c.Get(path)
	require.True(t, ok)
	assert.Same(t, edited, again)
	assert.Equal(t, domain.TierComputed, c.State(path))
}

func TestInvalidate_DropsLastKnownGood(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "a.exsd", schemaDoc("a"))
	key := f.fs.Canonical(path)
	indexed := &domain.ExtensionPointDefinition{Plugin: "org.example", ID: "a"}
	c := f.cache(16)

	f.index.EXPECT().Ready().Return(true)
	f.index.EXPECT().Read(key).Return(indexed, nil)
	_, ok := c.Get(path)
	require.True(t, ok)

	require.NoError(t, os.Remove(path))
	c.Invalidate(path)

	f.index.EXPECT().Ready().Return(false)
	f.logger.EXPECT().Warn(gomock.Any())
	_, ok = c.Get(path)
	assert.False(t, ok)
	assert.Equal(t, domain.TierUnresolved, c.State(path))
	assert.Zero(t, f.parser.calls.Load())
}

func TestGet_IndexMissFallsThrough(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "a.exsd", schemaDoc("a"))
	c := f.cache(16)

	f.index.EXPECT().Ready().Return(true).Times(2)
	f.index.EXPECT().Read(gomock.Any()).Return(nil, nil)
	f.index.EXPECT().Read(gomock.Any()).Return(nil, errors.New("bucket missing"))
	f.logger.EXPECT().Error(gomock.Any())

	def, ok := c.Get(path)
	require.True(t, ok)
	assert.Equal(t, domain.TierComputed, c.State(path))

	again, ok := c.Get(path)
	require.True(t, ok)
	assert.Same(t, def, again)
}

func TestGet_ParseFailureIsWarnedOnce(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	path := f.write(t, "broken.exsd", "<schema><unclosed>")
	c := f.cache(16)

	f.logger.EXPECT().Warn(gomock.Any()).Times(1)
	f.observer.EXPECT().ObserveParseFailure().Times(1)

	_, ok := c.Get(path)
	assert.False(t, ok)
	_, ok = c.Get(path)
	assert.False(t, ok)
	assert.Equal(t, domain.TierUnresolved, c.State(path))
	assert.Equal(t, int32(1), f.parser.calls.Load())

	// Fixing the file yields a definition.
	f.write(t, "broken.exsd", schemaDoc("fixed"))
	def, ok := c.Get(path)
	require.True(t, ok)
	assert.Equal(t, "org.example.fixed", def.Point())
}

func TestGet_MissingFile(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any())
	c := f.cache(16)

	_, ok := c.Get(filepath.Join(f.dir, "missing.exsd"))
	assert.False(t, ok)
	assert.Zero(t, f.parser.calls.Load())
}

func TestGet_ConcurrentCallersShareOneParse(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	f.parser.gate = make(chan struct{})
	path := f.write(t, "a.exsd", schemaDoc("a"))
	c := f.cache(16)

	const callers = 16
	results := make([]*domain.ExtensionPointDefinition, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = c.Get(path)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(f.parser.gate)
	wg.Wait()

	assert.Equal(t, int32(1), f.parser.calls.Load())
	for _, def := range results {
		require.NotNil(t, def)
		assert.Same(t, results[0], def)
	}
}

func TestClearCache_DuringComputationDropsResult(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	f.parser.gate = make(chan struct{})
	path := f.write(t, "a.exsd", schemaDoc("a"))
	c := f.cache(16)

	done := make(chan *domain.ExtensionPointDefinition)
	go func() {
		def, _ := c.Get(path)
		done <- def
	}()

	require.Eventually(t, func() bool { return f.parser.calls.Load() == 1 }, time.Second, time.Millisecond)
	c.ClearCache()
	close(f.parser.gate)

	stale := <-done
	require.NotNil(t, stale, "the caller still receives the computed value")

	fresh, ok := c.Get(path)
	require.True(t, ok)
	assert.NotSame(t, stale, fresh)
	assert.Equal(t, int32(2), f.parser.calls.Load())
}

func TestInvalidate(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	path := f.write(t, "a.exsd", schemaDoc("a"))
	c := f.cache(16)

	first, _ := c.Get(path)
	c.Invalidate(path, filepath.Join(f.dir, "unknown.exsd"))
	second, _ := c.Get(path)

	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), f.parser.calls.Load())
}

func TestGet_ZeroSizeDisablesMemoisation(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	path := f.write(t, "a.exsd", schemaDoc("a"))
	c := f.cache(0)

	_, ok := c.Get(path)
	require.True(t, ok)
	_, ok = c.Get(path)
	require.True(t, ok)
	c.Invalidate(path)

	assert.Equal(t, int32(2), f.parser.calls.Load())
}

func TestLoadExtensionPoint(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Ready().Return(false).AnyTimes()
	path := f.write(t, "a.exsd", schemaDoc("a"))
	c := f.cache(16)

	f.locator.EXPECT().Resolve("schema://org.example/a.exsd").Return(path, true)
	f.locator.EXPECT().Resolve("schema://org.example/missing.exsd").Return("", false)

	schema, ok := c.LoadExtensionPoint("schema://org.example/a.exsd")
	require.True(t, ok)
	assert.Equal(t, path, schema.Path)
	assert.Equal(t, "org.example.a", schema.Definition.Point())

	_, ok = c.LoadExtensionPoint("schema://org.example/missing.exsd")
	assert.False(t, ok)
}
