package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/exsd"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/index"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/exsd/internal/engine/locator"
)

// NodeID is the unique identifier for the cache Graft node.
const NodeID graft.ID = "engine.cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			index.NodeID,
			locator.NodeID,
			exsd.NodeID,
			fs.FileSystemNodeID,
			logger.NodeID,
			metrics.NodeID,
			config.ConfigNodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Cache, error) {
	idx, err := graft.Dep[ports.DefinitionIndex](ctx)
	if err != nil {
		return nil, err
	}

	loc, err := graft.Dep[ports.SchemaLocator](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.SchemaParser](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	observer, err := graft.Dep[ports.CacheObserver](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return New(Options{
		Index:    idx,
		Locator:  loc,
		Parser:   parser,
		FS:       fsys,
		Logger:   log,
		Observer: observer,
		Size:     cfg.CacheSize,
	}), nil
}
