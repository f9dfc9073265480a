package collector

import (
	"time"

	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InvalidatingCache = (*Local)(nil)

// Local collects fingerprints for project files that may still change.
//
// A record is only reused when the file's modification time lies at least
// racyWindow before the moment its content was read. A file written within
// that window may have changed again without its timestamp moving, so it is
// rehashed on every request until it settles.
type Local struct {
	*cache
	racyWindow time.Duration
}

// NewLocal creates a Local collector backed by the given store.
func NewLocal(
	hasher ports.ContentHasher,
	store ports.FileInfoStore,
	logger ports.Logger,
	racyWindow time.Duration,
) *Local {
	l := &Local{racyWindow: racyWindow}
	l.cache = newCache("local", hasher, store, logger, l.settled)
	return l
}

func (l *Local) settled(entry domain.CachedFileInfo) bool {
	return entry.HashedAt-entry.LastModified >= l.racyWindow.Milliseconds()
}

// Invalidate drops the records of the given paths.
func (l *Local) Invalidate(paths []string) error {
	keys := make([]string, len(paths))
	for i, path := range paths {
		keys[i] = cacheKey(path)
	}

	l.forget(keys)

	if err := l.store.Delete(keys...); err != nil {
		return zerr.Wrap(err, "failed to invalidate local fingerprints")
	}
	return nil
}
