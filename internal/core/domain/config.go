package domain

import (
	"runtime"
	"time"
)

// DefaultRacyWindow is how close to the hashing time a modification timestamp
// may be before the local tier stops trusting it.
const DefaultRacyWindow = 2 * time.Second

// Config is the resolved fingerprint configuration.
type Config struct {
	// GlobalRoots are absolute paths of the global cache storage areas.
	GlobalRoots []string
	// GlobalStorePath is the SQLite database backing the global tier.
	GlobalStorePath string
	// ResolveSymlinks makes classification follow symlinks before matching roots.
	ResolveSymlinks bool
	// LocalStorePath is the JSON file backing the local tier.
	LocalStorePath string
	// RacyWindow is the local tier's timestamp distrust window.
	RacyWindow time.Duration
	// Workers bounds concurrent fingerprinting.
	Workers int
}

// EffectiveWorkers returns Workers, or the number of CPUs when unset.
func (c *Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
