package router

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fingerprint/internal/adapters/collector" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fingerprint/internal/adapters/locations" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fingerprint/internal/core/ports"
)

// NodeID is the unique identifier for the router Graft node.
const NodeID graft.ID = "engine.router"

func init() {
	graft.Register(graft.Node[*Router]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			collector.GlobalNodeID,
			collector.LocalNodeID,
			locations.NodeID,
		},
		Run: func(ctx context.Context) (*Router, error) {
			global, err := graft.Dep[*collector.Global](ctx)
			if err != nil {
				return nil, err
			}

			local, err := graft.Dep[*collector.Local](ctx)
			if err != nil {
				return nil, err
			}

			loc, err := graft.Dep[ports.GlobalCacheLocations](ctx)
			if err != nil {
				return nil, err
			}

			return New(global, local, loc), nil
		},
	})
}
