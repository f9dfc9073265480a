// Package locations classifies paths into the global cache storage area.
package locations

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GlobalCacheLocations = (*Locations)(nil)

// Locations implements ports.GlobalCacheLocations over a fixed set of root directories.
type Locations struct {
	roots           []string
	resolveSymlinks bool
}

// New creates a Locations for the given roots. Roots must be non-empty; they
// are made absolute and cleaned. With resolveSymlinks, both roots and
// classified paths are resolved through symlinks before matching.
func New(roots []string, resolveSymlinks bool) (*Locations, error) {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		if strings.TrimSpace(root) == "" {
			return nil, zerr.Wrap(domain.ErrInvalidCacheRoot, "global cache root is empty")
		}

		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCacheRoot, err.Error()), "root", root)
		}

		if resolveSymlinks {
			// Roots that do not exist yet are kept as configured.
			if resolved, err := filepath.EvalSymlinks(abs); err == nil {
				abs = resolved
			} else if !os.IsNotExist(err) {
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCacheRoot, err.Error()), "root", root)
			}
		}

		cleaned = append(cleaned, abs)
	}

	return &Locations{
		roots:           cleaned,
		resolveSymlinks: resolveSymlinks,
	}, nil
}

// IsInsideGlobalCache reports whether path is one of the roots or lies below one.
func (l *Locations) IsInsideGlobalCache(path string) (bool, error) {
	if len(l.roots) == 0 {
		return false, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}

	if l.resolveSymlinks {
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to resolve symlinks"), "path", path)
		}
		abs = resolved
	}

	for _, root := range l.roots {
		if isWithin(root, abs) {
			return true, nil
		}
	}
	return false, nil
}

// isWithin reports whether path equals root or is nested below it, on path
// segment boundaries.
func isWithin(root, path string) bool {
	if path == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
