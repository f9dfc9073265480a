package wiring_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fingerprint/internal/app"
	"go.trai.ch/fingerprint/internal/core/domain"
	_ "go.trai.ch/fingerprint/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	graft.AssertDepsValid(t, "../../internal")
}

func TestComponents_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	globalRoot := filepath.Join(dir, "global")
	project := filepath.Join(dir, "project")
	require.NoError(t, os.MkdirAll(globalRoot, domain.DirPerm))
	require.NoError(t, os.MkdirAll(project, domain.DirPerm))

	require.NoError(t, os.WriteFile(filepath.Join(globalRoot, "lib.jar"), []byte("jar"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(project, "Main.java"), []byte("class Main {}"), domain.FilePerm))

	configPath := filepath.Join(dir, "fingerprint.yaml")
	config := "global:\n" +
		"  roots: [\"" + globalRoot + "\"]\n" +
		"  store: \"" + filepath.Join(dir, "global.db") + "\"\n" +
		"local:\n" +
		"  store: \"" + filepath.Join(dir, "local.json") + "\"\n" +
		"  racy_window: \"0s\"\n" +
		"workers: 2\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), domain.FilePerm))
	t.Setenv(domain.ConfigEnvVar, configPath)

	components, _, err := graft.ExecuteFor[*app.Components](context.Background(), graft.DisableCache())
	require.NoError(t, err)

	results, err := components.App.Fingerprint(
		context.Background(), dir, []string{"global", "project"}, app.FingerprintOptions{Collect: true},
	)
	require.NoError(t, err)
	require.NoError(t, components.Close())

	require.Len(t, results, 2)
	assert.Equal(t, filepath.Join(globalRoot, "lib.jar"), results[0].Path)
	assert.Equal(t, int64(3), results[0].Length)
	assert.Equal(t, filepath.Join(project, "Main.java"), results[1].Path)
	assert.Equal(t, int64(13), results[1].Length)
	assert.NotEqual(t, results[0].Hash, results[1].Hash)

	assert.FileExists(t, filepath.Join(dir, "global.db"))
	assert.FileExists(t, filepath.Join(dir, "local.json"))
}
