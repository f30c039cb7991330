package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/core/ports"
)

const (
	// NodeID provides the recorder through the ports.CacheObserver interface.
	NodeID graft.ID = "adapter.metrics"
	// RecorderNodeID provides the concrete recorder.
	RecorderNodeID graft.ID = "adapter.metrics.recorder"
)

func init() {
	graft.Register(graft.Node[*Recorder]{
		ID:        RecorderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Recorder, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.CacheObserver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RecorderNodeID},
		Run: func(ctx context.Context) (ports.CacheObserver, error) {
			return graft.Dep[*Recorder](ctx)
		},
	})
}
