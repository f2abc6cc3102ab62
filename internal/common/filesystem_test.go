package common

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFileSystemRoundTrip(t *testing.T) {
	fs := NewDefaultFileSystem()
	dir := t.TempDir()

	path, err := fs.CreateTemp(dir, "launcher-*.xml")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path) || filepath.Dir(path) == dir)

	require.NoError(t, fs.WriteFile(path, []byte("content"), 0o600))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	exists, err := fs.FileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	isDir, err := fs.IsDir(path)
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = fs.IsDir(dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	require.NoError(t, fs.Remove(path))
	exists, err = fs.FileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDefaultFileSystemIsDirFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	fs := NewDefaultFileSystem()
	base := t.TempDir()

	target := filepath.Join(base, "lib")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(base, "lib-link")
	require.NoError(t, os.Symlink(target, link))

	isDir, err := fs.IsDir(link)
	require.NoError(t, err)
	assert.True(t, isDir, "a symlinked directory must count as a directory")
}

func TestDefaultFileSystemEmptyPath(t *testing.T) {
	fs := NewDefaultFileSystem()

	err := fs.WriteFile("", nil, 0o600)
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = fs.ReadFile("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestMockFileSystem(t *testing.T) {
	fs := NewMockFileSystem()

	path, err := fs.CreateTemp("", "suite-*.xml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp", filepath.Dir(path))

	require.NoError(t, fs.WriteFile(path, []byte("x"), os.FileMode(0o600)))
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	fs.AddDir("/proj/lib")
	isDir, err := fs.IsDir("/proj/lib")
	require.NoError(t, err)
	assert.True(t, isDir)

	require.NoError(t, fs.Remove(path))
	err = fs.Remove(path)
	assert.ErrorIs(t, err, ErrMockFileNotFound)

	_, err = fs.IsDir("/nope")
	assert.Error(t, err)
}

func TestMockFileSystemTempNamesAreUnique(t *testing.T) {
	fs := NewMockFileSystem()
	a, err := fs.CreateTemp("", "f-*.xml")
	require.NoError(t, err)
	b, err := fs.CreateTemp("", "f-*.xml")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOptional(t *testing.T) {
	unset := NewUnsetOptional[int]()
	assert.False(t, unset.IsSet())
	assert.Nil(t, unset.Ptr())
	assert.Panics(t, func() { unset.Value() })

	set := NewOptional(0)
	assert.True(t, set.IsSet())
	assert.Equal(t, 0, set.Value())

	b := NewOptional(false)
	assert.True(t, b.IsSet())
	assert.False(t, b.Value())
}
