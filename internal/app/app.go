// Package app implements the application layer for fingerprint.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/fingerprint/internal/adapters/watcher" //nolint:depguard // Debouncer is wired in app layer
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	collector      ports.FileInfoCollector
	hasher         ports.ContentHasher
	resolver       ports.PathResolver
	global         ports.FingerprintCache
	local          ports.InvalidatingCache
	logger         ports.Logger
	newWatcher     func() (ports.Watcher, error)
	debounceWindow time.Duration
	workers        int
}

// New creates a new App instance. The collector is the tier router used for
// every fingerprint; global and local are the tiers behind it.
func New(
	collector ports.FileInfoCollector,
	hasher ports.ContentHasher,
	resolver ports.PathResolver,
	global ports.FingerprintCache,
	local ports.InvalidatingCache,
	log ports.Logger,
) *App {
	return &App{
		collector:      collector,
		hasher:         hasher,
		resolver:       resolver,
		global:         global,
		local:          local,
		logger:         log,
		debounceWindow: watcher.DefaultDebounceWindow,
		workers:        runtime.NumCPU(),
	}
}

// WithWorkers sets how many files are fingerprinted concurrently.
func (a *App) WithWorkers(n int) *App {
	if n > 0 {
		a.workers = n
	}
	return a
}

// WithWatcher sets the factory used by Watch and the debounce window applied
// to its events.
func (a *App) WithWatcher(factory func() (ports.Watcher, error), window time.Duration) *App {
	a.newWatcher = factory
	a.debounceWindow = window
	return a
}

// FingerprintOptions configuration for the Fingerprint method.
type FingerprintOptions struct {
	// Collect stats every file and returns its full record instead of the hash alone.
	Collect bool
}

// Fingerprint resolves the patterns against root and fingerprints every file
// concurrently. Results follow the sorted order of the resolved paths.
func (a *App) Fingerprint(
	ctx context.Context,
	root string,
	patterns []string,
	opts FingerprintOptions,
) ([]domain.PathInfo, error) {
	if len(patterns) == 0 {
		return nil, domain.ErrNoPathsSpecified
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", root)
	}

	paths, err := a.resolver.Resolve(patterns, absRoot)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve paths")
	}

	results := make([]domain.PathInfo, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			info, err := a.fingerprint(path, opts.Collect)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to fingerprint file"), "path", path)
			}
			results[i] = domain.PathInfo{Path: path, FileInfo: info}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *App) fingerprint(path string, collect bool) (domain.FileInfo, error) {
	if !collect {
		hash, err := a.collector.Hash(path)
		if err != nil {
			return domain.FileInfo{}, err
		}
		return domain.FileInfo{Hash: hash}, nil
	}

	length, lastModified, err := a.hasher.Stat(path)
	if err != nil {
		return domain.FileInfo{}, err
	}
	return a.collector.Collect(path, length, lastModified)
}

// Watch watches root until ctx is done. Changed files are dropped from the
// local tier, then fingerprinted again and logged.
func (a *App) Watch(ctx context.Context, root string) error {
	if a.newWatcher == nil {
		return zerr.New("no watcher configured")
	}

	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}

	if err := w.Start(ctx, root); err != nil {
		_ = w.Stop()
		return zerr.With(zerr.Wrap(err, "failed to start watcher"), "root", root)
	}
	a.logger.Info(fmt.Sprintf("watching %s", root))

	debouncer := watcher.NewDebouncer(a.debounceWindow, a.refresh)
	for event := range w.Events() {
		debouncer.Add(event.Path)
	}
	debouncer.Flush()

	if err := w.Stop(); err != nil {
		return zerr.Wrap(err, "failed to stop watcher")
	}
	return nil
}

func (a *App) refresh(paths []string) {
	if err := a.local.Invalidate(paths); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to invalidate local fingerprints"))
	}

	for _, path := range paths {
		length, lastModified, err := a.hasher.Stat(path)
		if err != nil {
			// Removed files and directories have nothing to fingerprint.
			continue
		}
		hash, err := a.collector.HashWithMetadata(path, length, lastModified)
		if err != nil {
			a.logger.Error(zerr.With(zerr.Wrap(err, "failed to fingerprint file"), "path", path))
			continue
		}
		a.logger.Info(fmt.Sprintf("%s  %s", hash, path))
	}
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Global also clears the machine-wide tier.
	Global bool
}

// Clean drops every recorded fingerprint of the local tier, and of the global
// tier when requested.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	clearCache := func(cache ports.FingerprintCache, name string) {
		a.logger.Info(fmt.Sprintf("clearing %s...", name))
		if err := cache.Clear(); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to clear %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("cleared %s", name))
	}

	clearCache(a.local, "local fingerprints")
	if options.Global {
		clearCache(a.global, "global fingerprints")
	}

	return errs
}
