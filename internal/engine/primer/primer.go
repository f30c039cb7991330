// Package primer resolves every schema of the project in the background so
// that later lookups and include traversals are served from memory.
package primer

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Unit kinds.
const (
	KindModule = "module"
	KindBundle = "bundle"
)

// Source returns the definition of a schema file.
type Source interface {
	Get(path string) (*domain.ExtensionPointDefinition, bool)
}

// RefResolver resolves the element references of a definition element.
type RefResolver interface {
	ResolveRefs(root domain.Schema, element *domain.ElementDefinition) []domain.ResolvedRef
}

// SchemaWalker lists the schema files below a set of directories.
type SchemaWalker interface {
	WalkSchemas(roots ...string) iter.Seq[string]
}

// Options configures a Primer.
type Options struct {
	Source    Source
	Refs      RefResolver
	Walker    SchemaWalker
	FS        ports.FileSystem
	Modules   ports.ModuleProvider
	Bundles   ports.BundleManager
	Telemetry ports.Telemetry
	Logger    ports.Logger
	// Parallelism bounds the number of units primed at once. Zero or less uses one per CPU.
	Parallelism int
}

// Primer loads every schema of the project modules and target bundles and
// resolves all of their element references. Units are primed concurrently
// and a failing unit does not stop the others.
type Primer struct {
	opts Options

	mu       sync.Mutex
	running  bool
	done     chan struct{}
	progress []domain.UnitReport
	last     domain.PrimeReport
	lastErr  error
}

// New creates a Primer.
func New(opts Options) *Primer {
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}
	return &Primer{opts: opts}
}

// Units lists the project modules followed by the target bundles.
func (p *Primer) Units() []domain.PrimeUnit {
	var units []domain.PrimeUnit
	for _, m := range p.opts.Modules.Modules() {
		units = append(units, domain.PrimeUnit{
			Name:  m.Name,
			Kind:  KindModule,
			Roots: slices.Clone(m.ContentRoots),
		})
	}
	for _, b := range p.opts.Bundles.Bundles() {
		roots := []string{b.Root}
		if b.Source != nil {
			roots = append(roots, b.Source.Root)
		}
		units = append(units, domain.PrimeUnit{Name: b.SymbolicName, Kind: KindBundle, Roots: roots})
	}
	return units
}

// Start begins a priming run in the background and returns immediately.
// It fails with domain.ErrPrimeInProgress while a previous run is active.
func (p *Primer) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return domain.ErrPrimeInProgress
	}

	units := p.Units()
	p.running = true
	p.done = make(chan struct{})
	p.progress = make([]domain.UnitReport, len(units))
	for i, u := range units {
		p.progress[i] = domain.UnitReport{PrimeUnit: u, Status: domain.UnitPending}
	}

	go p.run(ctx, units, p.done)
	return nil
}

// Wait blocks until the current or last run finishes and returns its report.
// It returns immediately when no run was started.
func (p *Primer) Wait(ctx context.Context) (domain.PrimeReport, error) {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done == nil {
		return domain.PrimeReport{}, nil
	}

	select {
	case <-done:
	case <-ctx.Done():
		return domain.PrimeReport{}, ctx.Err()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.lastErr
}

// Run primes the project and waits for the result.
func (p *Primer) Run(ctx context.Context) (domain.PrimeReport, error) {
	if err := p.Start(ctx); err != nil {
		return domain.PrimeReport{}, err
	}
	return p.Wait(ctx)
}

// Progress returns the state of every unit of the current or last run.
func (p *Primer) Progress() []domain.UnitReport {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.progress)
}

func (p *Primer) run(ctx context.Context, units []domain.PrimeUnit, done chan struct{}) {
	defer close(done)

	runID := uuid.NewString()
	p.opts.Logger.Info(fmt.Sprintf("priming %d units (run %s)", len(units), runID))

	var g errgroup.Group
	g.SetLimit(p.opts.Parallelism)
	for i, u := range units {
		g.Go(func() error {
			p.setProgress(i, domain.UnitReport{PrimeUnit: u, Status: domain.UnitRunning})
			p.setProgress(i, p.primeUnit(ctx, runID, u))
			return nil
		})
	}
	_ = g.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = domain.PrimeReport{RunID: runID, Units: slices.Clone(p.progress)}
	p.lastErr = ctx.Err()
	p.running = false
}

func (p *Primer) setProgress(i int, report domain.UnitReport) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress[i] = report
}

func (p *Primer) primeUnit(ctx context.Context, runID string, u domain.PrimeUnit) (report domain.UnitReport) {
	report = domain.UnitReport{PrimeUnit: u, Status: domain.UnitRunning}
	_, vertex := p.opts.Telemetry.Record(ctx, fmt.Sprintf("prime %s %s [%s]", u.Kind, u.Name, runID))

	var err error
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(domain.ErrPrimeFailed, "panic", fmt.Sprint(r))
		}
		if err != nil {
			err = zerr.With(err, "unit", u.Name)
			report.Status = domain.UnitFailed
			report.Error = err.Error()
			p.opts.Logger.Error(err)
		} else {
			report.Status = domain.UnitCompleted
		}
		vertex.Complete(err)
	}()

	for file := range p.opts.Walker.WalkSchemas(u.Roots...) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = zerr.Wrap(ctxErr, domain.ErrPrimeFailed.Error())
			return report
		}

		report.Files++
		def, ok := p.opts.Source.Get(file)
		if !ok {
			report.Invalid++
			continue
		}

		resolved, unresolved := p.resolveAll(domain.Schema{Path: p.opts.FS.Canonical(file), Definition: def})
		report.Refs += resolved
		report.Unresolved += unresolved
		_, _ = fmt.Fprintf(vertex.Stdout(), "%s: %d refs, %d unresolved\n", file, resolved, unresolved)
	}
	return report
}

// resolveAll resolves the references of the extension element and every
// top-level element of root.
func (p *Primer) resolveAll(root domain.Schema) (resolved, unresolved int) {
	def := root.Definition
	elements := make([]*domain.ElementDefinition, 0, len(def.Elements)+1)
	if def.Extension != nil {
		elements = append(elements, def.Extension)
	}
	for i := range def.Elements {
		elements = append(elements, &def.Elements[i])
	}

	for _, el := range elements {
		for _, ref := range p.opts.Refs.ResolveRefs(root, el) {
			if ref.Element == nil {
				unresolved++
			} else {
				resolved++
			}
		}
	}
	return resolved, unresolved
}
