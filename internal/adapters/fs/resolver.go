package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver expands path patterns into regular files using filepath.Glob and the Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// Resolve expands the given patterns, relative to root unless absolute, into a
// sorted, de-duplicated list of files. Directories are walked recursively.
func (r *Resolver) Resolve(patterns []string, root string) ([]string, error) {
	seen := make(map[string]struct{})

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, pattern)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrPathNotFound, "no files match pattern"), "path", path)
		}

		for _, match := range matches {
			if err := r.expand(match, seen); err != nil {
				return nil, err
			}
		}
	}

	result := make([]string, 0, len(seen))
	for path := range seen {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}

func (r *Resolver) expand(path string, seen map[string]struct{}) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	if !info.IsDir() {
		seen[path] = struct{}{}
		return nil
	}

	for file, err := range r.walker.WalkFiles(path, nil) {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", path)
		}
		seen[file] = struct{}{}
	}
	return nil
}
