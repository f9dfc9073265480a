package sqlite

import "go.trai.ch/zerr"

// Len returns the number of records in s.
func Len(s *Store) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM file_info`).Scan(&n); err != nil {
		return 0, zerr.Wrap(err, "failed to count global store records")
	}
	return n, nil
}
