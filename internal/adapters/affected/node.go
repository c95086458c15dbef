package affected

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockscan/internal/adapters/fs"
	"go.trai.ch/lockscan/internal/core/ports"
)

// NodeID is the unique identifier for the affected list Graft node.
const NodeID graft.ID = "adapter.affected"

func init() {
	graft.Register(graft.Node[ports.AffectedSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ReaderNodeID},
		Run: func(ctx context.Context) (ports.AffectedSource, error) {
			reader, err := graft.Dep[ports.FileReader](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(reader), nil
		},
	})
}
