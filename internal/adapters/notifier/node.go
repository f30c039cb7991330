package notifier

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/adapters/logger"
	"go.trai.ch/exsd/internal/core/ports"
)

const (
	// NodeID provides the notifier through the ports.Notifier interface.
	NodeID graft.ID = "adapter.notifier"
	// ConcreteNodeID provides the notifier with access to its history.
	ConcreteNodeID graft.ID = "adapter.notifier.concrete"
)

func init() {
	graft.Register(graft.Node[*Notifier]{
		ID:        ConcreteNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Notifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})

	graft.Register(graft.Node[ports.Notifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ConcreteNodeID},
		Run: func(ctx context.Context) (ports.Notifier, error) {
			return graft.Dep[*Notifier](ctx)
		},
	})
}
