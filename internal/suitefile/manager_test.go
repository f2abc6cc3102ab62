package suitefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvmtools/go-testng-launcher/internal/common"
)

func TestNewManager(t *testing.T) {
	manager := NewManager("")
	assert.NotNil(t, manager, "NewManager should not return nil")
	assert.NotEmpty(t, manager.baseDir, "Manager baseDir should not be empty")

	custom := "/tmp/test"
	manager2 := NewManager(custom)
	assert.Equal(t, custom, manager2.baseDir)
}

func TestWriteDefaultSuite(t *testing.T) {
	fs := common.NewMockFileSystem()
	manager := NewManagerWithFS("/tmp", fs)

	path, err := manager.WriteDefaultSuite([]string{"com.example", "com.other"})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path), "descriptor path must be absolute")
	assert.True(t, strings.HasPrefix(path, "/tmp"))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<!DOCTYPE suite SYSTEM "https://testng.org/testng-1.0.dtd">` +
		`<suite name="bld Default Suite" verbose="2">` +
		`<test name="All Packages">` +
		`<packages>` +
		`<package name="com.example"/>` +
		`<package name="com.other"/>` +
		`</packages></test></suite>`
	assert.Equal(t, want, string(content))
}

func TestWriteDefaultSuiteNoPackages(t *testing.T) {
	fs := common.NewMockFileSystem()
	manager := NewManagerWithFS("/tmp", fs)

	path, err := manager.WriteDefaultSuite(nil)
	require.NoError(t, err)

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<packages></packages>")
}

func TestWriteDefaultSuiteCreatesNewFileEachTime(t *testing.T) {
	fs := common.NewMockFileSystem()
	manager := NewManagerWithFS("/tmp", fs)

	first, err := manager.WriteDefaultSuite([]string{"a"})
	require.NoError(t, err)
	second, err := manager.WriteDefaultSuite([]string{"a"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, manager.Files(), 2)
}

func TestCleanupFile(t *testing.T) {
	fs := common.NewMockFileSystem()
	manager := NewManagerWithFS("/tmp", fs)

	path, err := manager.WriteDefaultSuite([]string{"a"})
	require.NoError(t, err)

	require.NoError(t, manager.CleanupFile(path))

	exists, err := fs.FileExists(path)
	require.NoError(t, err)
	assert.False(t, exists, "descriptor should have been removed")
	assert.Empty(t, manager.Files())

	err = manager.CleanupFile("/not/managed/path")
	assert.ErrorIs(t, err, ErrFileNotManaged)
}

func TestCleanup(t *testing.T) {
	fs := common.NewMockFileSystem()
	manager := NewManagerWithFS("/tmp", fs)

	first, err := manager.WriteDefaultSuite([]string{"a"})
	require.NoError(t, err)
	second, err := manager.WriteDefaultSuite([]string{"b"})
	require.NoError(t, err)

	require.NoError(t, manager.Cleanup())
	assert.Empty(t, manager.Files())

	for _, p := range []string{first, second} {
		exists, err := fs.FileExists(p)
		require.NoError(t, err)
		assert.False(t, exists)
	}
}

var errSimulatedFailure = fmt.Errorf("simulated failure")

// failingFS is a mock file system whose Remove always fails.
// Used for testing error handling in Cleanup.
type failingFS struct{ *common.MockFileSystem }

func (fs *failingFS) Remove(_ string) error { return errSimulatedFailure }

func TestCleanupErrorCases(t *testing.T) {
	fs := &failingFS{common.NewMockFileSystem()}
	manager := NewManagerWithFS("/tmp", fs)

	_, err := manager.WriteDefaultSuite([]string{"a"})
	require.NoError(t, err)

	err = manager.Cleanup()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCleanupFailed)
	assert.Len(t, manager.Files(), 1, "failed removals stay managed")
}

func TestWriteDefaultSuiteWriteFailure(t *testing.T) {
	fs := &writeFailFS{common.NewMockFileSystem()}
	manager := NewManagerWithFS("/tmp", fs)

	_, err := manager.WriteDefaultSuite([]string{"a"})
	require.Error(t, err)
	assert.Empty(t, manager.Files(), "a failed write must not be tracked")
}

// writeFailFS fails every WriteFile call.
type writeFailFS struct{ *common.MockFileSystem }

func (fs *writeFailFS) WriteFile(_ string, _ []byte, _ os.FileMode) error {
	return errSimulatedFailure
}
