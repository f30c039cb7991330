// Package app implements the application layer for exsd.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"go.trai.ch/exsd/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/index"    //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/metrics"  //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/notifier" //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/exsd/internal/engine/cache"
	"go.trai.ch/exsd/internal/engine/primer"
	"go.trai.ch/exsd/internal/engine/reference"
	"go.trai.ch/zerr"
)

// Logger is a ports.Logger whose level can be changed at runtime.
type Logger interface {
	ports.Logger
	SetLevel(level slog.Level)
}

// Options holds the components an App is built from.
type Options struct {
	Parser    ports.SchemaParser
	FS        ports.FileSystem
	Walker    *fs.Walker
	Hasher    *fs.Hasher
	Index     *index.Store
	Cache     *cache.Cache
	Refs      *reference.Resolver
	Primer    *primer.Primer
	Watcher   ports.Watcher
	Modules   ports.ModuleProvider
	Bundles   ports.BundleManager
	Notifier  *notifier.Notifier
	Metrics   *metrics.Recorder
	Telemetry ports.Telemetry
	Logger    Logger
}

// App represents the main application logic.
type App struct {
	opts Options
}

// Sample is one cache counter value.
type Sample = metrics.Sample

// IndexResult summarises an Index call.
type IndexResult struct {
	Files   int `json:"files"`
	Indexed int `json:"indexed"`
	Skipped int `json:"skipped"`
	// UpToDate is set when the index already matched the schema files and was kept.
	UpToDate bool `json:"upToDate"`
}

// New creates a new App instance. Rebuilding the index clears the cache.
func New(opts Options) *App {
	opts.Index.OnRebuild(opts.Cache.ClearCache)
	return &App{opts: opts}
}

// SetVerbose switches debug logging on or off.
func (a *App) SetVerbose(verbose bool) {
	if verbose {
		a.opts.Logger.SetLevel(slog.LevelDebug)
		return
	}
	a.opts.Logger.SetLevel(slog.LevelInfo)
}

// ShowProgress renders the progress of priming runs on w.
func (a *App) ShowProgress(w io.Writer) {
	a.opts.Telemetry.SetOutput(w)
}

// Parse reads the EXSD file at path without consulting any cache.
func (a *App) Parse(path string) (*domain.ExtensionPointDefinition, error) {
	r, err := a.opts.FS.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	def, err := a.opts.Parser.Parse(r)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return def, nil
}

// Load returns the schema behind a schema:// location.
func (a *App) Load(location string) (domain.Schema, error) {
	schema, ok := a.opts.Cache.LoadExtensionPoint(location)
	if !ok {
		return domain.Schema{}, zerr.With(domain.ErrSchemaNotFound, "location", location)
	}
	return schema, nil
}

// Resolve finds the element named ref in the schema at location or in the
// schemas it includes.
func (a *App) Resolve(location, ref string) (*domain.ElementDefinition, error) {
	schema, err := a.Load(location)
	if err != nil {
		return nil, err
	}
	el, ok := a.opts.Refs.FindRefElement(schema, ref)
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrElementNotFound, "ref", ref), "location", location)
	}
	return el, nil
}

// ResolveRefs resolves every reference of the named element of the schema at
// location. The extension element is addressed by its name as well.
func (a *App) ResolveRefs(location, element string) ([]domain.ResolvedRef, error) {
	schema, err := a.Load(location)
	if err != nil {
		return nil, err
	}

	def := schema.Definition
	el, ok := def.Element(element)
	if !ok && def.Extension != nil && def.Extension.Name == element {
		el, ok = def.Extension, true
	}
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrElementNotFound, "ref", element), "location", location)
	}
	return a.opts.Refs.ResolveRefs(schema, el), nil
}

// SchemaFiles lists every schema file of the project modules and target bundles.
func (a *App) SchemaFiles() []string {
	files := slices.Collect(a.opts.Walker.WalkSchemas(a.roots()...))
	slices.Sort(files)
	return slices.Compact(files)
}

// Index rebuilds the definition index. The rebuild is skipped when the set of
// schema files and their contents did not change since the last build, unless
// force is set.
func (a *App) Index(ctx context.Context, force bool) (IndexResult, error) {
	files := a.SchemaFiles()
	fingerprint, err := a.opts.Hasher.ComputeSetHash(files)
	if err != nil {
		return IndexResult{}, zerr.Wrap(err, domain.ErrIndexWriteFailed.Error())
	}

	result := IndexResult{Files: len(files)}
	if !force && a.opts.Index.Ready() {
		if previous, ok := a.opts.Index.Fingerprint(); ok && previous == fingerprint {
			a.opts.Logger.Info("definition index is up to date")
			result.UpToDate = true
			return result, nil
		}
	}

	stats, err := a.opts.Index.Rebuild(ctx, files, fingerprint)
	if err != nil {
		return IndexResult{}, err
	}
	result.Indexed = stats.Indexed
	result.Skipped = stats.Skipped
	a.opts.Logger.Info(fmt.Sprintf("indexed %d of %d schema files", stats.Indexed, len(files)))
	return result, nil
}

// Prime loads and resolves every schema of the project and waits for the result.
func (a *App) Prime(ctx context.Context) (domain.PrimeReport, error) {
	return a.opts.Primer.Run(ctx)
}

// Watch keeps cached and indexed definitions in sync with the schema files
// until ctx is done. Priming runs in the background while watching. onChange,
// if set, is called with every applied batch of changes.
func (a *App) Watch(ctx context.Context, onChange func([]ports.WatchEvent)) error {
	if err := a.opts.Watcher.Start(ctx, a.roots()...); err != nil {
		return err
	}
	defer func() { _ = a.opts.Watcher.Stop() }()

	if err := a.opts.Primer.Start(ctx); err != nil && !errors.Is(err, domain.ErrPrimeInProgress) {
		a.opts.Logger.Error(err)
	}

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(events []ports.WatchEvent) {
		a.Apply(events)
		if onChange != nil {
			onChange(events)
		}
	})
	for event := range a.opts.Watcher.Events() {
		debouncer.Add(event)
	}
	debouncer.Flush()

	_, _ = a.opts.Primer.Wait(context.WithoutCancel(ctx))
	return nil
}

// Apply drops the cached definitions of the changed files and re-indexes them.
func (a *App) Apply(events []ports.WatchEvent) {
	if len(events) == 0 {
		return
	}

	paths := make([]string, 0, len(events))
	for _, event := range events {
		paths = append(paths, event.Path)
	}
	a.opts.Cache.Invalidate(paths...)

	for _, event := range events {
		var err error
		if event.Operation.Gone() {
			err = a.opts.Index.Remove(event.Path)
		} else {
			err = a.opts.Index.Update(event.Path)
		}
		if err != nil {
			a.opts.Logger.Error(err)
		}
	}
	a.opts.Logger.Info(fmt.Sprintf("applied %d schema file changes", len(events)))
}

// Notifications returns the messages raised during this run.
func (a *App) Notifications() []domain.Notification {
	return a.opts.Notifier.History()
}

// Metrics returns the current cache counters.
func (a *App) Metrics() ([]Sample, error) {
	return a.opts.Metrics.Snapshot()
}

// Close stops the watcher, flushes telemetry and releases the index.
func (a *App) Close() error {
	return errors.Join(a.opts.Watcher.Stop(), a.opts.Telemetry.Close(), a.opts.Index.Close())
}

func (a *App) roots() []string {
	var roots []string
	for _, m := range a.opts.Modules.Modules() {
		roots = append(roots, m.ContentRoots...)
	}
	for _, b := range a.opts.Bundles.Bundles() {
		roots = append(roots, b.Root)
		if b.Source != nil {
			roots = append(roots, b.Source.Root)
		}
	}
	return roots
}
