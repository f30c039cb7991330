// Package cache serves extension-point definitions per schema file.
//
// A lookup is answered by the first tier that can serve it:
//
//  1. the definition index, when it is ready and holds the file;
//  2. the last definition the index returned for the file, while the
//     index is not ready;
//  3. an on-demand parse of the file, memoised against its stamp.
package cache

import (
	"strconv"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var _ ports.DefinitionLoader = (*Cache)(nil)

// entry is an on-demand result. A nil def records a file that failed to parse.
type entry struct {
	stamp domain.FileStamp
	def   *domain.ExtensionPointDefinition
}

// Cache implements ports.DefinitionLoader.
type Cache struct {
	index    ports.DefinitionIndex
	locator  ports.SchemaLocator
	parser   ports.SchemaParser
	fs       ports.FileSystem
	logger   ports.Logger
	observer ports.CacheObserver

	// onDemand is nil when memoisation is disabled.
	onDemand      *lru.Cache[string, entry]
	lastKnownGood sync.Map // canonical path -> *domain.ExtensionPointDefinition
	states        sync.Map // canonical path -> domain.CacheTier
	group         singleflight.Group
	epoch         atomic.Uint64
}

// Options holds the collaborators of a Cache.
type Options struct {
	Index    ports.DefinitionIndex
	Locator  ports.SchemaLocator
	Parser   ports.SchemaParser
	FS       ports.FileSystem
	Logger   ports.Logger
	Observer ports.CacheObserver
	// Size bounds the on-demand tier. Zero disables memoisation.
	Size int
}

// New creates a new Cache.
func New(opts Options) *Cache {
	c := &Cache{
		index:    opts.Index,
		locator:  opts.Locator,
		parser:   opts.Parser,
		fs:       opts.FS,
		logger:   opts.Logger,
		observer: opts.Observer,
	}
	if opts.Size > 0 {
		// lru.New only fails for non-positive sizes.
		c.onDemand, _ = lru.New[string, entry](opts.Size)
	}
	return c
}

// Get returns the definition of the schema file at path.
// It returns false when the file cannot be read or parsed.
func (c *Cache) Get(path string) (*domain.ExtensionPointDefinition, bool) {
	key := c.fs.Canonical(path)

	if c.index.Ready() {
		if def := c.fromIndex(key); def != nil {
			c.lastKnownGood.Store(key, def)
			c.record(key, domain.TierIndexed)
			return def, true
		}
		// A ready index that does not serve the file means the file changed,
		// was removed or was never indexed.
		c.lastKnownGood.Delete(key)
	} else if v, ok := c.lastKnownGood.Load(key); ok {
		c.record(key, domain.TierStale)
		return v.(*domain.ExtensionPointDefinition), true //nolint:forcetypeassert // Only definitions are stored
	}

	def := c.onDemandValue(key)
	if def == nil {
		c.record(key, domain.TierUnresolved)
		return nil, false
	}
	c.record(key, domain.TierComputed)
	return def, true
}

// LoadExtensionPoint resolves location and returns the schema stored there.
func (c *Cache) LoadExtensionPoint(location string) (domain.Schema, bool) {
	path, ok := c.locator.Resolve(location)
	if !ok {
		return domain.Schema{}, false
	}
	def, ok := c.Get(path)
	if !ok {
		return domain.Schema{}, false
	}
	return domain.Schema{Path: path, Definition: def}, true
}

// ClearCache drops every on-demand and last-known-good definition.
// Computations already running when it is called are not retained.
func (c *Cache) ClearCache() {
	c.epoch.Add(1)
	if c.onDemand != nil {
		c.onDemand.Purge()
	}
	c.lastKnownGood.Clear()
	c.states.Clear()
}

// Invalidate drops the on-demand and last-known-good definitions of paths.
func (c *Cache) Invalidate(paths ...string) {
	for _, path := range paths {
		key := c.fs.Canonical(path)
		c.lastKnownGood.Delete(key)
		if c.onDemand != nil {
			c.onDemand.Remove(key)
		}
	}
}

// State reports which tier served the last lookup of path.
func (c *Cache) State(path string) domain.CacheTier {
	v, ok := c.states.Load(c.fs.Canonical(path))
	if !ok {
		return domain.TierUnresolved
	}
	return v.(domain.CacheTier) //nolint:forcetypeassert // Only tiers are stored
}

func (c *Cache) record(key string, tier domain.CacheTier) {
	c.states.Store(key, tier)
	c.observer.ObserveLookup(tier)
}

func (c *Cache) fromIndex(key string) *domain.ExtensionPointDefinition {
	def, err := c.index.Read(key)
	if err != nil {
		c.logger.Error(err)
		return nil
	}
	return def
}

func (c *Cache) onDemandValue(key string) *domain.ExtensionPointDefinition {
	stamp, err := c.fs.Stamp(key)
	if err != nil {
		c.logger.Warn("cannot read schema file " + key + ": " + err.Error())
		return nil
	}

	if c.onDemand != nil {
		if e, ok := c.onDemand.Get(key); ok && e.stamp == stamp {
			return e.def
		}
	}

	flightKey := key + "\x00" + strconv.FormatUint(stamp.Hash, 16)
	v, _, _ := c.group.Do(flightKey, func() (any, error) {
		epoch := c.epoch.Load()
		def := c.parse(key)
		if c.onDemand != nil && c.epoch.Load() == epoch {
			c.onDemand.Add(key, entry{stamp: stamp, def: def})
		}
		return def, nil
	})
	return v.(*domain.ExtensionPointDefinition) //nolint:forcetypeassert // The flight returns a definition
}

func (c *Cache) parse(key string) *domain.ExtensionPointDefinition {
	r, err := c.fs.Open(key)
	if err != nil {
		c.logger.Warn("cannot read schema file " + key + ": " + err.Error())
		return nil
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	def, err := c.parser.Parse(r)
	if err != nil {
		c.observer.ObserveParseFailure()
		c.logger.Warn("invalid EXSD file " + key + ": " + err.Error())
		return nil
	}
	return def
}
