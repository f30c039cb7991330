package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/core/ports"
)

const (
	// NodeID provides the logger through the ports.Logger interface.
	NodeID graft.ID = "adapter.logger"
	// ConcreteNodeID provides the logger with its level and output controls.
	ConcreteNodeID graft.ID = "adapter.logger.concrete"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        ConcreteNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ConcreteNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			return graft.Dep[*Logger](ctx)
		},
	})
}
