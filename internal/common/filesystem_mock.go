package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMockFileNotFound is returned when a mock file does not exist
var ErrMockFileNotFound = errors.New("file not found")

// MockFileSystem implements FileSystem for testing
type MockFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool
	// Counter for creating unique temp file names
	tempCounter int
}

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddDir registers a directory in the mock filesystem
func (m *MockFileSystem) AddDir(path string) {
	m.dirs[filepath.Clean(path)] = true
}

// AddFile registers a file with contents in the mock filesystem
func (m *MockFileSystem) AddFile(path string, data []byte) {
	m.files[filepath.Clean(path)] = data
}

// CreateTemp creates a mock temporary file and returns its path
func (m *MockFileSystem) CreateTemp(dir string, pattern string) (string, error) {
	if dir == "" {
		dir = "/tmp"
	}
	m.tempCounter++
	name := strings.ReplaceAll(pattern, "*", fmt.Sprintf("%d", m.tempCounter))
	path := filepath.Join(dir, name)
	m.files[path] = nil
	return path, nil
}

// WriteFile stores data for the named file
func (m *MockFileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}
	m.files[filepath.Clean(path)] = data
	return nil
}

// ReadFile returns the stored contents of the named file
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMockFileNotFound, path)
	}
	return data, nil
}

// Remove deletes a file or empty directory from the mock filesystem
func (m *MockFileSystem) Remove(path string) error {
	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		delete(m.files, path)
		return nil
	}
	if m.dirs[path] {
		delete(m.dirs, path)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMockFileNotFound, path)
}

// FileExists checks if a file or directory exists in the mock filesystem
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		return true, nil
	}
	return m.dirs[path], nil
}

// IsDir checks if the path is a registered directory
func (m *MockFileSystem) IsDir(path string) (bool, error) {
	path = filepath.Clean(path)
	if m.dirs[path] {
		return true, nil
	}
	if _, ok := m.files[path]; ok {
		return false, nil
	}
	return false, fmt.Errorf("%w: %s", ErrMockFileNotFound, path)
}
