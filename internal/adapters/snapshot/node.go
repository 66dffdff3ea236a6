package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the resolution loader Graft node.
const NodeID graft.ID = "adapter.resolution_loader"

func init() {
	graft.Register(graft.Node[ports.ResolutionLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResolutionLoader, error) {
			return NewLoader(), nil
		},
	})
}
