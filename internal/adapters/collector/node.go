package collector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fingerprint/internal/adapters/cas"
	"go.trai.ch/fingerprint/internal/adapters/config"
	"go.trai.ch/fingerprint/internal/adapters/fs"
	"go.trai.ch/fingerprint/internal/adapters/logger"
	"go.trai.ch/fingerprint/internal/adapters/sqlite"
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
)

const (
	// GlobalNodeID is the unique identifier for the global collector Graft node.
	GlobalNodeID graft.ID = "adapter.collector.global"
	// LocalNodeID is the unique identifier for the local collector Graft node.
	LocalNodeID graft.ID = "adapter.collector.local"
)

func init() {
	graft.Register(graft.Node[*Global]{
		ID:        GlobalNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, sqlite.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Global, error) {
			hasher, err := graft.Dep[ports.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*sqlite.Store](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGlobal(hasher, store, log), nil
		},
	})

	graft.Register(graft.Node[*Local]{
		ID:        LocalNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, cas.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Local, error) {
			hasher, err := graft.Dep[ports.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*cas.Store](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocal(hasher, store, log, cfg.RacyWindow), nil
		},
	})
}
