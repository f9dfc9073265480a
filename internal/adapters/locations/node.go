package locations

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fingerprint/internal/adapters/config"
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
)

// NodeID is the unique identifier for the global cache locations Graft node.
const NodeID graft.ID = "adapter.locations"

func init() {
	graft.Register(graft.Node[ports.GlobalCacheLocations]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.GlobalCacheLocations, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			loc, err := New(cfg.GlobalRoots, cfg.ResolveSymlinks)
			if err != nil {
				return nil, err
			}
			return loc, nil
		},
	})
}
