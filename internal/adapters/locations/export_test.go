package locations

// Roots returns the normalized roots of l.
func Roots(l *Locations) []string {
	return append([]string(nil), l.roots...)
}
