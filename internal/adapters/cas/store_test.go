package cas_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fingerprint/internal/adapters/cas"
	"go.trai.ch/fingerprint/internal/core/domain"
)

func sampleInfo() domain.CachedFileInfo {
	return domain.CachedFileInfo{
		FileInfo: domain.FileInfo{Hash: 0xdeadbeef, Length: 1024, LastModified: 1700000000000},
		HashedAt: 1700000005000,
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put("/project/Main.java", sampleInfo()))

	got, err := store.Get("/project/Main.java")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleInfo(), *got)

	missing, err := store.Get("/project/Other.java")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), ".fingerprint", "local.json")

	store1, err := cas.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store1.Put("/project/a.txt", sampleInfo()))
	require.NoError(t, store1.Close())

	store2, err := cas.NewStore(storePath)
	require.NoError(t, err)

	got, err := store2.Get("/project/a.txt")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.HashCode(0xdeadbeef), got.Hash)
}

func TestStore_FlushOnlyWhenDirty(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "local.json")

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store.Flush())

	_, err = os.Stat(storePath)
	assert.True(t, os.IsNotExist(err), "clean store must not create a file")

	require.NoError(t, store.Put("/p", sampleInfo()))
	require.NoError(t, store.Flush())

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	require.NoError(t, err)
	jsonStr := string(content)
	assert.True(t, strings.Contains(jsonStr, `"last_modified"`))
	assert.True(t, strings.Contains(jsonStr, `"hashed_at"`))
}

func TestStore_OmitZero(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "local.json")

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store.Put("/p", domain.CachedFileInfo{FileInfo: domain.FileInfo{Hash: 1}}))
	require.NoError(t, store.Close())

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hashed_at")
}

func TestStore_Delete(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put("/a", sampleInfo()))
	require.NoError(t, store.Put("/b", sampleInfo()))
	require.NoError(t, store.Delete("/a", "/unknown"))

	assert.Equal(t, 1, cas.Len(store))
	got, err := store.Get("/a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Clear(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "local.json")

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store.Put("/a", sampleInfo()))
	require.NoError(t, store.Flush())

	require.NoError(t, store.Clear())
	assert.Equal(t, 0, cas.Len(store))

	_, err = os.Stat(storePath)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already empty store is fine.
	require.NoError(t, store.Clear())
}

func TestStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(storePath, []byte("{not json"), 0o600))

	_, err := cas.NewStore(storePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal fingerprint store")
}
