package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentHasher = (*Hasher)(nil)

// Hasher reads file content and metadata from disk.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the XXHash of a file's content.
func (h *Hasher) HashFile(path string) (domain.HashCode, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	info, err := f.Stat()
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	if !info.Mode().IsRegular() {
		return 0, zerr.With(zerr.Wrap(domain.ErrNotRegularFile, "cannot hash file"), "path", path)
	}

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return domain.HashCode(hasher.Sum64()), nil
}

// Stat returns the file's length and modification time in unix milliseconds.
func (h *Hasher) Stat(path string) (length, lastModified int64, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	if !info.Mode().IsRegular() {
		return 0, 0, zerr.With(zerr.Wrap(domain.ErrNotRegularFile, "cannot stat file"), "path", path)
	}
	return info.Size(), info.ModTime().UnixMilli(), nil
}
