// Package cas implements the per-project fingerprint store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileInfoStore = (*Store)(nil)

// Store implements ports.FileInfoStore using a flat JSON file.
//
// Records live in memory; Flush and Close write them back when they changed.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.CachedFileInfo
	dirty bool
}

// NewStore creates a new FileInfoStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.CachedFileInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read fingerprint store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal fingerprint store"), "path", s.path)
	}

	return nil
}

// Flush writes the records to disk if they changed since the last write.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal fingerprint store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for fingerprint store"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary fingerprint store")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write fingerprint store")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write fingerprint store")
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set fingerprint store permissions")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace fingerprint store"), "path", s.path)
	}

	s.dirty = false
	return nil
}

// Get retrieves the record for path.
func (s *Store) Get(path string) (*domain.CachedFileInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[path]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the record for path.
func (s *Store) Put(path string, info domain.CachedFileInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[path] = info
	s.dirty = true
	return nil
}

// Delete removes the records for the given paths.
func (s *Store) Delete(paths ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, path := range paths {
		if _, ok := s.cache[path]; ok {
			delete(s.cache, path)
			s.dirty = true
		}
	}
	return nil
}

// Clear removes every record and the backing file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string]domain.CachedFileInfo)
	s.dirty = false

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove fingerprint store"), "path", s.path)
	}
	return nil
}

// Close flushes pending records.
func (s *Store) Close() error {
	return s.Flush()
}
