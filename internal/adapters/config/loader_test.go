package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fingerprint/internal/adapters/config"
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fingerprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	path := writeConfig(t, `
version: "1"
global:
  roots: ["/opt/toolchains", "/global-cache/", "/global-cache"]
  store: "/var/cache/fingerprint/global.db"
  resolve_symlinks: true
local:
  store: "build/local.json"
  racy_window: "500ms"
workers: 4
`)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/global-cache", "/opt/toolchains"}, cfg.GlobalRoots)
	assert.Equal(t, "/var/cache/fingerprint/global.db", cfg.GlobalStorePath)
	assert.True(t, cfg.ResolveSymlinks)
	assert.Equal(t, "build/local.json", cfg.LocalStorePath)
	assert.Equal(t, 500*time.Millisecond, cfg.RacyWindow)
	assert.Equal(t, 4, cfg.EffectiveWorkers())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	loader := config.NewLoader(mockLogger)

	cfg, err := loader.Load(filepath.Join(t.TempDir(), "fingerprint.yaml"))
	require.NoError(t, err)

	cacheDir, err := os.UserCacheDir()
	require.NoError(t, err)

	assert.Empty(t, cfg.GlobalRoots)
	assert.Equal(t, domain.DefaultGlobalStorePath(cacheDir), cfg.GlobalStorePath)
	assert.Equal(t, domain.DefaultLocalStorePath(), cfg.LocalStorePath)
	assert.Equal(t, domain.DefaultRacyWindow, cfg.RacyWindow)
	assert.Positive(t, cfg.EffectiveWorkers())
}

func TestLoad_ExpandsHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := writeConfig(t, `
global:
  roots: ["~/.gradle/caches"]
  store: "~/.cache/fp.db"
`)

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, ".gradle", "caches")}, cfg.GlobalRoots)
	assert.Equal(t, filepath.Join(home, ".cache", "fp.db"), cfg.GlobalStorePath)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
		errContains string
	}{
		{
			name:        "malformed yaml",
			content:     "global: [",
			errContains: "failed to parse config file",
		},
		{
			name:        "bad racy window",
			content:     "local:\n  racy_window: soon\n",
			expectedErr: domain.ErrInvalidConfig,
		},
		{
			name:        "negative racy window",
			content:     "local:\n  racy_window: -1s\n",
			expectedErr: domain.ErrInvalidConfig,
		},
		{
			name:        "negative workers",
			content:     "workers: -2\n",
			expectedErr: domain.ErrInvalidConfig,
		},
		{
			name:        "empty root",
			content:     "global:\n  roots: [\"\"]\n",
			expectedErr: domain.ErrInvalidCacheRoot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := config.NewLoader(mocks.NewMockLogger(ctrl))

			_, err := loader.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			}
			if tt.errContains != "" {
				require.ErrorContains(t, err, tt.errContains)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv(domain.ConfigEnvVar, "")
	assert.Equal(t, domain.ConfigFileName, config.Path())

	t.Setenv(domain.ConfigEnvVar, "/etc/fingerprint.yaml")
	assert.Equal(t, "/etc/fingerprint.yaml", config.Path())
}
