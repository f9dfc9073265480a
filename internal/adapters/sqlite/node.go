package sqlite

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fingerprint/internal/adapters/config"
	"go.trai.ch/fingerprint/internal/core/domain"
)

// NodeID is the unique identifier for the global fingerprint store Graft node.
const NodeID graft.ID = "adapter.global_store"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return Open(cfg.GlobalStorePath)
		},
	})
}
