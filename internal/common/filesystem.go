// Package common provides shared interfaces and utilities used across the
// launcher packages.
package common

import (
	"errors"
	"os"
)

// Error definitions for static error handling
var (
	ErrEmptyPath = errors.New("path cannot be empty")
)

// FileSystem defines the interface for file system operations.
// This interface allows for easy mocking in tests and provides a consistent
// API for file operations across all packages.
type FileSystem interface {
	// CreateTemp creates a temporary file matching pattern in dir and
	// returns its path. An empty dir means the default temp directory.
	CreateTemp(dir string, pattern string) (string, error)

	// WriteFile writes data to the named file with the given permissions
	WriteFile(path string, data []byte, perm os.FileMode) error

	// ReadFile reads the named file and returns its contents
	ReadFile(path string) ([]byte, error)

	// Remove removes a single file or empty directory
	Remove(path string) error

	// FileExists checks if a file or directory exists
	FileExists(path string) (bool, error)

	// IsDir checks if the path is a directory
	IsDir(path string) (bool, error)
}

// DefaultFileSystem implements FileSystem using standard os package functions
type DefaultFileSystem struct{}

// NewDefaultFileSystem creates a new DefaultFileSystem
func NewDefaultFileSystem() *DefaultFileSystem {
	return &DefaultFileSystem{}
}

// CreateTemp creates a temporary file matching pattern in dir
func (fs *DefaultFileSystem) CreateTemp(dir string, pattern string) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile writes data to the named file with the given permissions
func (fs *DefaultFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}
	return os.WriteFile(path, data, perm)
}

// ReadFile reads the named file and returns its contents
func (fs *DefaultFileSystem) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return os.ReadFile(path)
}

// Remove removes a single file or empty directory
func (fs *DefaultFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// FileExists checks if a file or directory exists
func (fs *DefaultFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

// IsDir checks if the path is a directory. Symlinks are followed so a
// linked directory counts as one.
func (fs *DefaultFileSystem) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
