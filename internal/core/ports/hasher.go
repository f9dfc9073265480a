package ports

import "go.trai.ch/fingerprint/internal/core/domain"

// ContentHasher reads files from disk.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type ContentHasher interface {
	// HashFile computes the digest of the file's content.
	HashFile(path string) (domain.HashCode, error)
	// Stat returns the file's length in bytes and modification time in unix milliseconds.
	Stat(path string) (length, lastModified int64, err error)
}
