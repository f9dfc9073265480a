package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fingerprint/internal/adapters/fs"
	"go.trai.ch/fingerprint/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   ignored/file
	//   src/main.go
	//   README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "src", "main.go"), "package main")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()

	files := make(map[string]bool)
	for path, err := range walker.WalkFiles(tmpDir, []string{"ignored"}) {
		require.NoError(t, err)
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		files[rel] = true
	}

	assert.False(t, files[filepath.Join(".git", "config")], "expected .git/config to be skipped")
	assert.False(t, files[filepath.Join("ignored", "file")], "expected ignored/file to be skipped")
	assert.True(t, files[filepath.Join("src", "main.go")])
	assert.True(t, files["README.md"])
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	walker := fs.NewWalker()

	var gotErr error
	for _, err := range walker.WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		gotErr = err
	}
	require.Error(t, gotErr)
}

func TestHasher_HashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher()

	hash1, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")

	writeFile(t, path, "hello there")
	hash3, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3, "expected hash to change with content")
}

func TestHasher_HashFile_KnownDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	writeFile(t, path, "")

	hash, err := fs.NewHasher().HashFile(path)
	require.NoError(t, err)
	// xxhash64 of the empty input.
	assert.Equal(t, "ef46db3751d8e999", hash.String())
}

func TestHasher_HashFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := fs.NewHasher()

	_, err := hasher.HashFile(filepath.Join(tmpDir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = hasher.HashFile(tmpDir)
	require.ErrorIs(t, err, domain.ErrNotRegularFile)
}

func TestHasher_Stat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	writeFile(t, path, "12345")
	mtime := time.UnixMilli(1700000000123)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	length, lastModified, err := fs.NewHasher().Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), length)
	assert.Equal(t, int64(1700000000123), lastModified)

	_, _, err = fs.NewHasher().Stat(filepath.Dir(path))
	require.ErrorIs(t, err, domain.ErrNotRegularFile)
}
