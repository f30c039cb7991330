package bundle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/adapters/config"
	"go.trai.ch/exsd/internal/adapters/logger"
	"go.trai.ch/exsd/internal/adapters/manifest"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
)

const (
	// NodeID provides the bundle manager through the ports.BundleManager interface.
	NodeID graft.ID = "adapter.bundle"
	// ManagerNodeID provides the concrete manager, which can rescan targets.
	ManagerNodeID graft.ID = "adapter.bundle.manager"
)

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.NodeID, logger.NodeID, config.ConfigNodeID},
		Run: func(ctx context.Context) (*Manager, error) {
			reader, err := graft.Dep[*manifest.Reader](ctx)
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
			m := NewManager(reader, log)
			m.Scan(cfg.Targets)
			return m, nil
		},
	})

	graft.Register(graft.Node[ports.BundleManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ManagerNodeID},
		Run: func(ctx context.Context) (ports.BundleManager, error) {
			return graft.Dep[*Manager](ctx)
		},
	})
}
