package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fingerprint/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/fingerprint/internal/adapters/collector" //nolint:depguard // Wired in app layer
	"go.trai.ch/fingerprint/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fingerprint/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/fingerprint/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fingerprint/internal/adapters/sqlite"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fingerprint/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/fingerprint/internal/engine/router"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			router.NodeID,
			collector.GlobalNodeID,
			collector.LocalNodeID,
			fs.HasherNodeID,
			fs.ResolverNodeID,
			watcher.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			cas.NodeID,
			sqlite.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	r, err := graft.Dep[*router.Router](ctx)
	if err != nil {
		return nil, err
	}

	global, err := graft.Dep[*collector.Global](ctx)
	if err != nil {
		return nil, err
	}

	local, err := graft.Dep[*collector.Local](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.ContentHasher](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[watcher.Factory](ctx)
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

	return New(r, hasher, resolver, global, local, log).
		WithWorkers(cfg.EffectiveWorkers()).
		WithWatcher(newWatcher, watcher.DefaultDebounceWindow), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	localStore, err := graft.Dep[*cas.Store](ctx)
	if err != nil {
		return nil, err
	}

	globalStore, err := graft.Dep[*sqlite.Store](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, localStore, globalStore), nil
}
