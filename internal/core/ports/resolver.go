package ports

// PathResolver expands user supplied path patterns into concrete files.
//
//go:generate mockgen -destination=mocks/mock_resolver.go -package=mocks -source=resolver.go
type PathResolver interface {
	// Resolve expands patterns (globs, files or directories) relative to root.
	Resolve(patterns []string, root string) ([]string, error)
}
