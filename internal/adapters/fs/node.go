package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exsd/internal/core/ports"
)

const (
	WalkerNodeID     graft.ID = "adapter.fs.walker"
	HasherNodeID     graft.ID = "adapter.fs.hasher"
	FileSystemNodeID graft.ID = "adapter.fs"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileSystem(hasher), nil
		},
	})
}
