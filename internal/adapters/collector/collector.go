// Package collector implements caching FileInfoCollectors for the global and local tiers.
package collector

import (
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/zerr"
)

// trustFunc reports whether a cached entry whose metadata matches may be reused.
type trustFunc func(entry domain.CachedFileInfo) bool

// cache is the read-through, write-through memo shared by both tiers.
type cache struct {
	name   string
	hasher ports.ContentHasher
	store  ports.FileInfoStore
	logger ports.Logger
	trust  trustFunc
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]domain.CachedFileInfo
}

func newCache(
	name string,
	hasher ports.ContentHasher,
	store ports.FileInfoStore,
	logger ports.Logger,
	trust trustFunc,
) *cache {
	return &cache{
		name:    name,
		hasher:  hasher,
		store:   store,
		logger:  logger,
		trust:   trust,
		now:     time.Now,
		entries: make(map[string]domain.CachedFileInfo),
	}
}

// Hash stats the file and returns its digest.
func (c *cache) Hash(path string) (domain.HashCode, error) {
	length, lastModified, err := c.hasher.Stat(path)
	if err != nil {
		return 0, err
	}
	return c.HashWithMetadata(path, length, lastModified)
}

// HashWithMetadata returns the digest of the file with the given metadata.
func (c *cache) HashWithMetadata(path string, length, lastModified int64) (domain.HashCode, error) {
	info, err := c.Collect(path, length, lastModified)
	if err != nil {
		return 0, err
	}
	return info.Hash, nil
}

// Collect returns the cached record if it is still valid for the given
// metadata, otherwise it reads the file and records the new digest.
func (c *cache) Collect(path string, length, lastModified int64) (domain.FileInfo, error) {
	key := cacheKey(path)

	if entry, ok := c.lookup(key); ok && entry.Matches(length, lastModified) && c.trust(entry) {
		return entry.FileInfo, nil
	}

	hash, err := c.hasher.HashFile(path)
	if err != nil {
		return domain.FileInfo{}, err
	}

	entry := domain.CachedFileInfo{
		FileInfo: domain.FileInfo{
			Hash:         hash,
			Length:       length,
			LastModified: lastModified,
		},
		HashedAt: c.now().UnixMilli(),
	}
	c.record(key, entry)

	return entry.FileInfo, nil
}

// Clear drops every cached record from memory and from the store.
func (c *cache) Clear() error {
	c.mu.Lock()
	c.entries = make(map[string]domain.CachedFileInfo)
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear store"), "tier", c.name)
	}
	return nil
}

func (c *cache) lookup(key string) (domain.CachedFileInfo, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return entry, true
	}

	stored, err := c.store.Get(key)
	if err != nil {
		// A broken store only costs a rehash.
		c.logger.Warn("fingerprint " + c.name + " store read failed for " + key + ": " + err.Error())
		return domain.CachedFileInfo{}, false
	}
	if stored == nil {
		return domain.CachedFileInfo{}, false
	}

	c.mu.Lock()
	c.entries[key] = *stored
	c.mu.Unlock()

	return *stored, true
}

func (c *cache) record(key string, entry domain.CachedFileInfo) {
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	if err := c.store.Put(key, entry); err != nil {
		c.logger.Warn("fingerprint " + c.name + " store write failed for " + key + ": " + err.Error())
	}
}

func (c *cache) forget(keys []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// cacheKey normalizes path so that equivalent spellings share one entry.
func cacheKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
