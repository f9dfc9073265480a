// Package router dispatches fingerprinting between the global and local cache tiers.
package router

import (
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
)

var _ ports.FileInfoCollector = (*Router)(nil)

// Router is a FileInfoCollector that forwards every call to the global collector
// for files inside a global cache storage area and to the local collector otherwise.
//
// The classification is evaluated on every call and never memoized. Errors from
// the classifier or the chosen collector are returned unchanged.
//
// A Router is safe for concurrent use if its collaborators are.
type Router struct {
	global    ports.FileInfoCollector
	local     ports.FileInfoCollector
	locations ports.GlobalCacheLocations
}

// New creates a Router over the given collectors and classifier.
func New(global, local ports.FileInfoCollector, locations ports.GlobalCacheLocations) *Router {
	return &Router{
		global:    global,
		local:     local,
		locations: locations,
	}
}

// Hash returns the content digest of the file at path.
func (r *Router) Hash(path string) (domain.HashCode, error) {
	c, err := r.collectorFor(path)
	if err != nil {
		return 0, err
	}
	return c.Hash(path)
}

// HashWithMetadata returns the content digest of the file at path, passing the
// caller's length and modification time through to the selected collector.
func (r *Router) HashWithMetadata(path string, length, lastModified int64) (domain.HashCode, error) {
	c, err := r.collectorFor(path)
	if err != nil {
		return 0, err
	}
	return c.HashWithMetadata(path, length, lastModified)
}

// Collect returns the digest and metadata record of the file at path.
func (r *Router) Collect(path string, length, lastModified int64) (domain.FileInfo, error) {
	c, err := r.collectorFor(path)
	if err != nil {
		return domain.FileInfo{}, err
	}
	return c.Collect(path, length, lastModified)
}

func (r *Router) collectorFor(path string) (ports.FileInfoCollector, error) {
	inside, err := r.locations.IsInsideGlobalCache(path)
	if err != nil {
		return nil, err
	}
	if inside {
		return r.global, nil
	}
	return r.local, nil
}
