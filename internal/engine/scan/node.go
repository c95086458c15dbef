package scan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockscan/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lockscan/internal/adapters/safejson" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lockscan/internal/core/ports"
)

// NodeID is the unique identifier for the scanner Graft node.
const NodeID graft.ID = "engine.scanner"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.GuardNodeID,
			fs.ReaderNodeID,
			safejson.NodeID,
		},
		Run: func(ctx context.Context) (*Scanner, error) {
			guard, err := graft.Dep[ports.PathGuard](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.FileReader](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.JSONParser](ctx)
			if err != nil {
				return nil, err
			}

			return NewScanner(guard, reader, parser), nil
		},
	})
}
