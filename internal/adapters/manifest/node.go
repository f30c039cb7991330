package manifest

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the manifest reader Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[*Reader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Reader, error) {
			return NewReader(), nil
		},
	})
}
