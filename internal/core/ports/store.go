package ports

import "go.trai.ch/fingerprint/internal/core/domain"

// FileInfoStore persists fingerprints keyed by file path.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go
type FileInfoStore interface {
	// Get retrieves the cached record for path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.CachedFileInfo, error)

	// Put stores the record for path.
	Put(path string, info domain.CachedFileInfo) error

	// Delete removes the records for the given paths. Unknown paths are ignored.
	Delete(paths ...string) error

	// Clear removes every record.
	Clear() error

	// Close persists pending writes and releases the store.
	Close() error
}
