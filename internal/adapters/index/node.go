package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/adapters/config"
	"go.trai.ch/exsd/internal/adapters/exsd"
	"go.trai.ch/exsd/internal/adapters/fs"
	"go.trai.ch/exsd/internal/adapters/logger"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
)

const (
	// NodeID provides the store through the ports.DefinitionIndex interface.
	NodeID graft.ID = "adapter.index"
	// StoreNodeID provides the concrete store, which can be rebuilt and updated.
	StoreNodeID graft.ID = "adapter.index.store"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			fs.FileSystemNodeID,
			exsd.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Store, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.SchemaParser](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return Open(cfg.IndexPath, fsys, parser, log)
		},
	})

	graft.Register(graft.Node[ports.DefinitionIndex]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.DefinitionIndex, error) {
			return graft.Dep[*Store](ctx)
		},
	})
}
