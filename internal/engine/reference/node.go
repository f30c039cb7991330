package reference

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/adapters/notifier" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/exsd/internal/engine/cache"
)

// NodeID is the unique identifier for the reference resolver Graft node.
const NodeID graft.ID = "engine.reference"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID, notifier.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			c, err := graft.Dep[*cache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			n, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(c, n), nil
		},
	})
}
