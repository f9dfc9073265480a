// Package sqlite implements the machine-wide fingerprint store for the global tier.
package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // Registers the "sqlite" driver.
)

var _ ports.FileInfoStore = (*Store)(nil)

const schema = `CREATE TABLE IF NOT EXISTS file_info (
	path          TEXT PRIMARY KEY,
	hash          INTEGER NOT NULL,
	length        INTEGER NOT NULL,
	last_modified INTEGER NOT NULL,
	hashed_at     INTEGER NOT NULL
)`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// Store implements ports.FileInfoStore on a SQLite database shared by every
// process on the machine. Schema changes and Clear are serialized across
// processes with a lock file next to the database.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create directory for global store"), "path", path)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to acquire global store lock"), "path", lock.Path())
	}
	defer lock.Unlock() //nolint:errcheck // Released on close of the descriptor anyway

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open global store"), "path", path)
	}
	// Pragmas are per connection; one connection keeps them in force.
	db.SetMaxOpenConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, "failed to apply pragma"), "pragma", pragma)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to apply global store schema"), "path", path)
	}

	return &Store{db: db, path: path, lock: lock}, nil
}

// Get retrieves the record for path.
func (s *Store) Get(path string) (*domain.CachedFileInfo, error) {
	var (
		hash int64
		info domain.CachedFileInfo
	)

	err := s.db.QueryRow(
		`SELECT hash, length, last_modified, hashed_at FROM file_info WHERE path = ?`,
		path,
	).Scan(&hash, &info.Length, &info.LastModified, &info.HashedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to query global store"), "path", path)
	}

	// SQLite integers are signed; the digest round-trips through int64.
	info.Hash = domain.HashCode(uint64(hash)) //nolint:gosec // Bit pattern preserved on purpose
	return &info, nil
}

// Put stores the record for path.
func (s *Store) Put(path string, info domain.CachedFileInfo) error {
	_, err := s.db.Exec(
		`INSERT INTO file_info (path, hash, length, last_modified, hashed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			hash = excluded.hash,
			length = excluded.length,
			last_modified = excluded.last_modified,
			hashed_at = excluded.hashed_at`,
		path,
		int64(info.Hash), //nolint:gosec // Bit pattern preserved on purpose
		info.Length,
		info.LastModified,
		info.HashedAt,
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write global store"), "path", path)
	}
	return nil
}

// Delete removes the records for the given paths.
func (s *Store) Delete(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return zerr.Wrap(err, "failed to begin global store transaction")
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	for _, path := range paths {
		if _, err := tx.Exec(`DELETE FROM file_info WHERE path = ?`, path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to delete from global store"), "path", path)
		}
	}

	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, "failed to commit global store transaction")
	}
	return nil
}

// Clear removes every record. It fails with domain.ErrStoreLocked when
// another process holds the store lock.
func (s *Store) Clear() error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to acquire global store lock"), "path", s.lock.Path())
	}
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrStoreLocked, "cannot clear global store"), "path", s.lock.Path())
	}
	defer s.lock.Unlock() //nolint:errcheck // Released on close of the descriptor anyway

	if _, err := s.db.Exec(`DELETE FROM file_info`); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear global store"), "path", s.path)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
