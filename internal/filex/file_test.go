package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func requireDir(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}
}

func TestEnsureDataDir_AbsolutePathUsedAsIs(t *testing.T) {
	root := t.TempDir()
	chdir(t, t.TempDir())

	want := filepath.Join(root, "var", "lib", "bloglist")
	got, err := EnsureDataDir(want)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	requireDir(t, want)
}

func TestEnsureDataDir_RelativePathJoinsWorkingDir(t *testing.T) {
	cwd := t.TempDir()
	chdir(t, cwd)
	// macOS temp dirs live behind a /private symlink.
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := EnsureDataDir(".bloglist")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, ".bloglist"), got)
	requireDir(t, got)
}

func TestEnsureDataDir_CleansPath(t *testing.T) {
	root := t.TempDir()

	got, err := EnsureDataDir(root + "/state/../data/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data"), got)
	requireDir(t, got)
	assert.NoDirExists(t, filepath.Join(root, "state"))
}

func TestEnsureDataDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	first, err := EnsureDataDir(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(first, "bloglist.db"), []byte("x"), 0o600))

	second, err := EnsureDataDir(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.FileExists(t, filepath.Join(second, "bloglist.db"), "existing contents are kept")
}

func TestEnsureDataDir_Errors(t *testing.T) {
	_, err := EnsureDataDir("")
	require.ErrorIs(t, err, ErrEmptyDir)

	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	_, err = EnsureDataDir(file)
	require.Error(t, err, "a file with the same name blocks the directory")
}
