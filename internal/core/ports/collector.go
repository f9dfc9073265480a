package ports

import "go.trai.ch/fingerprint/internal/core/domain"

// FileInfoCollector computes content fingerprints for files.
//
// Implementations must be deterministic for unchanged file content and may use
// the supplied length and lastModified as a hint to skip re-reading the file.
//
//go:generate mockgen -destination=mocks/mock_collector.go -package=mocks -source=collector.go
type FileInfoCollector interface {
	// Hash returns the content digest of the file at path.
	Hash(path string) (domain.HashCode, error)
	// HashWithMetadata returns the content digest of the file at path, given
	// its length in bytes and modification time in unix milliseconds.
	HashWithMetadata(path string, length, lastModified int64) (domain.HashCode, error)
	// Collect returns the digest together with the supplied metadata.
	Collect(path string, length, lastModified int64) (domain.FileInfo, error)
}
