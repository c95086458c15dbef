package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockscan/internal/adapters/detector"
	"go.trai.ch/lockscan/internal/core/ports"
)

// NodeID is the unique identifier for the renderer factory Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.RendererFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (ports.RendererFactory, error) {
			env, err := graft.Dep[detector.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(env.ColorProfile()), nil
		},
	})
}
