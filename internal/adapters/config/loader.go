// Package config provides the configuration loader for fingerprint.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Path returns the configuration file path: $FINGERPRINT_CONFIG if set,
// fingerprint.yaml in the working directory otherwise.
func Path() string {
	if p := os.Getenv(domain.ConfigEnvVar); p != "" {
		return p
	}
	return domain.ConfigFileName
}

// Load reads the configuration file at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	var file Fingerprintfile

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.Logger.Info("no " + path + " found, using defaults")
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
	}

	return toDomain(&file)
}

func toDomain(file *Fingerprintfile) (*domain.Config, error) {
	cfg := &domain.Config{
		ResolveSymlinks: file.Global.ResolveSymlinks,
		RacyWindow:      domain.DefaultRacyWindow,
		Workers:         file.Workers,
	}

	if file.Workers < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "workers must not be negative"), "workers", file.Workers)
	}

	roots, err := canonicalizeRoots(file.Global.Roots)
	if err != nil {
		return nil, err
	}
	cfg.GlobalRoots = roots

	if cfg.GlobalStorePath, err = expandHome(file.Global.Store); err != nil {
		return nil, err
	}
	if cfg.GlobalStorePath == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate user cache directory")
		}
		cfg.GlobalStorePath = domain.DefaultGlobalStorePath(cacheDir)
	}

	if cfg.LocalStorePath, err = expandHome(file.Local.Store); err != nil {
		return nil, err
	}
	if cfg.LocalStorePath == "" {
		cfg.LocalStorePath = domain.DefaultLocalStorePath()
	}

	if file.Local.RacyWindow != "" {
		window, err := time.ParseDuration(file.Local.RacyWindow)
		if err != nil || window < 0 {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrInvalidConfig, "racy_window must be a non-negative duration"),
				"racy_window", file.Local.RacyWindow,
			)
		}
		cfg.RacyWindow = window
	}

	return cfg, nil
}

// canonicalizeRoots expands, cleans, sorts and de-duplicates the global roots.
func canonicalizeRoots(roots []string) ([]string, error) {
	if len(roots) == 0 {
		return nil, nil
	}

	res := make([]string, 0, len(roots))
	for _, root := range roots {
		if strings.TrimSpace(root) == "" {
			return nil, zerr.Wrap(domain.ErrInvalidCacheRoot, "global cache root is empty")
		}
		expanded, err := expandHome(root)
		if err != nil {
			return nil, err
		}
		res = append(res, filepath.Clean(expanded))
	}

	slices.Sort(res)
	return slices.Compact(res), nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to expand home directory"), "path", path)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
