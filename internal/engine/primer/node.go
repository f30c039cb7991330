package primer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/adapters/bundle"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/project"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/exsd/internal/engine/cache"
	"go.trai.ch/exsd/internal/engine/reference"
)

// NodeID is the unique identifier for the primer Graft node.
const NodeID graft.ID = "engine.primer"

func init() {
	graft.Register(graft.Node[*Primer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			reference.NodeID,
			fs.WalkerNodeID,
			fs.FileSystemNodeID,
			project.NodeID,
			bundle.NodeID,
			progrock.NodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Primer, error) {
	c, err := graft.Dep[*cache.Cache](ctx)
	if err != nil {
		return nil, err
	}
	refs, err := graft.Dep[*reference.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}
	modules, err := graft.Dep[ports.ModuleProvider](ctx)
	if err != nil {
		return nil, err
	}
	bundles, err := graft.Dep[ports.BundleManager](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Source:      c,
		Refs:        refs,
		Walker:      walker,
		FS:          fsys,
		Modules:     modules,
		Bundles:     bundles,
		Telemetry:   telemetry,
		Logger:      log,
		Parallelism: cfg.PrimeParallelism,
	}), nil
}
