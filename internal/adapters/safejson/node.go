package safejson

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockscan/internal/core/ports"
)

// NodeID is the unique identifier for the JSON parser Graft node.
const NodeID graft.ID = "adapter.safejson"

func init() {
	graft.Register(graft.Node[ports.JSONParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.JSONParser, error) {
			return NewParser(), nil
		},
	})
}
