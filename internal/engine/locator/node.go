package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/adapters/bundle"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/adapters/project" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/core/ports"
)

// NodeID is the unique identifier for the schema locator Graft node.
const NodeID graft.ID = "engine.locator"

func init() {
	graft.Register(graft.Node[ports.SchemaLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			bundle.NodeID,
			project.NodeID,
			fs.FileSystemNodeID,
		},
		Run: func(ctx context.Context) (ports.SchemaLocator, error) {
			bundles, err := graft.Dep[ports.BundleManager](ctx)
			if err != nil {
				return nil, err
			}

			modules, err := graft.Dep[ports.ModuleProvider](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(bundles, modules, fsys), nil
		},
	})
}
