package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "components", "ui")

	created, err := EnsureDir(dir)
	require.NoError(t, err)
	assert.True(t, created)
	assert.DirExists(t, dir)

	created, err = EnsureDir(dir)
	require.NoError(t, err)
	assert.False(t, created, "second call should be a no-op")
}

func TestEnsureDirRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := EnsureDir(path)
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	tmp := t.TempDir()
	assert.True(t, Exists(tmp))
	assert.False(t, Exists(filepath.Join(tmp, "missing")))
}

func TestWriteFileAtomic(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "button.tsx")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, WriteFileAtomic(path, []byte("new body\n"), FilePerm))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new body\n", string(data))

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, FilePerm, info.Mode().Perm())
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "button.tsx")
	err := WriteFileAtomic(path, []byte("x"), FilePerm)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestChmod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")
	require.NoError(t, os.WriteFile(path, []byte("test"), 0644))
	require.NoError(t, Chmod(path, 0600))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}
