package exsd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/core/ports"
)

// NodeID is the unique identifier for the EXSD parser Graft node.
const NodeID graft.ID = "adapter.exsd"

func init() {
	graft.Register(graft.Node[ports.SchemaParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SchemaParser, error) {
			return NewParser(), nil
		},
	})
}
