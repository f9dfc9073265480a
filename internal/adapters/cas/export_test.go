package cas

// Len returns the number of records held by s.
func Len(s *Store) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}
