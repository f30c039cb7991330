package project

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
	// NodeID provides the module provider through the ports.ModuleProvider interface.
	NodeID graft.ID = "adapter.project"
	// ModulesNodeID provides the concrete provider, which can reload manifests.
	ModulesNodeID graft.ID = "adapter.project.modules"
)

func init() {
	graft.Register(graft.Node[*Modules]{
		ID:        ModulesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.NodeID, logger.NodeID, config.ConfigNodeID},
		Run: func(ctx context.Context) (*Modules, error) {
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
			return NewModules(reader, log, cfg.Modules), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ModulesNodeID},
		Run: func(ctx context.Context) (ports.ModuleProvider, error) {
			return graft.Dep[*Modules](ctx)
		},
	})
}
