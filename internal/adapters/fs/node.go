package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockscan/internal/core/ports"
)

const (
	// GuardNodeID is the unique identifier for the path guard Graft node.
	GuardNodeID graft.ID = "adapter.fs.guard"
	// ReaderNodeID is the unique identifier for the file reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
)

func init() {
	graft.Register(graft.Node[ports.PathGuard]{
		ID:        GuardNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathGuard, error) {
			return NewGuard(), nil
		},
	})

	graft.Register(graft.Node[ports.FileReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileReader, error) {
			return NewReader(), nil
		},
	})
}
