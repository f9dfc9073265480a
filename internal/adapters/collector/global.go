package collector

import (
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
)

var _ ports.FingerprintCache = (*Global)(nil)

// Global collects fingerprints for files in the global cache storage area.
//
// Files there are immutable once placed, so a record is reused for as long as
// the file's length and modification time match.
type Global struct {
	*cache
}

// NewGlobal creates a Global collector backed by the given store.
func NewGlobal(hasher ports.ContentHasher, store ports.FileInfoStore, logger ports.Logger) *Global {
	return &Global{
		cache: newCache("global", hasher, store, logger, func(domain.CachedFileInfo) bool {
			return true
		}),
	}
}
