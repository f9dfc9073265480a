package domain

import "fmt"

// HashCode is the content digest of a file.
type HashCode uint64

// String renders the digest as 16 lowercase hex digits.
func (h HashCode) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// FileInfo is a digest together with the metadata it was computed for.
type FileInfo struct {
	Hash HashCode `json:"hash"`
	// Length is the file size in bytes.
	Length int64 `json:"length"`
	// LastModified is the modification time in unix milliseconds.
	LastModified int64 `json:"last_modified"`
}

// CachedFileInfo is a FileInfo as persisted by a collector's store.
type CachedFileInfo struct {
	FileInfo
	// HashedAt is the time the content was read, in unix milliseconds.
	HashedAt int64 `json:"hashed_at,omitzero"`
}

// Matches reports whether the cached record was computed for the given metadata.
func (c CachedFileInfo) Matches(length, lastModified int64) bool {
	return c.Length == length && c.LastModified == lastModified
}

// PathInfo is the fingerprint record of one file.
type PathInfo struct {
	Path string
	FileInfo
}
