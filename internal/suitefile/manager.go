package suitefile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/jvmtools/go-testng-launcher/internal/common"
)

// Error definitions for the suitefile package
var (
	// ErrFileNotManaged is returned when cleanup is requested for a file
	// this manager did not create
	ErrFileNotManaged = errors.New("suite file not managed by this manager")
	// ErrCleanupFailed is returned when suite file cleanup fails
	ErrCleanupFailed = errors.New("suite file cleanup failed")
)

// filePerm is the permission set for synthesized descriptors; the file only
// needs to be readable by the child JVM started by the same user.
const filePerm = 0o600

// Manager handles the lifecycle of synthesized suite descriptors. The
// descriptor path must outlive command construction so it can be handed to
// the child process; the caller owns the manager and releases the files with
// Cleanup once the child has exited.
type Manager struct {
	files   map[string]bool // file path -> managed flag
	mu      sync.Mutex
	baseDir string
	fs      common.FileSystem
}

// NewManager creates a suite file manager placing descriptors under baseDir.
// An empty baseDir means the system temp directory.
func NewManager(baseDir string) *Manager {
	return NewManagerWithFS(baseDir, common.NewDefaultFileSystem())
}

// NewManagerWithFS creates a suite file manager with a custom FileSystem
func NewManagerWithFS(baseDir string, fs common.FileSystem) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{
		files:   make(map[string]bool),
		baseDir: baseDir,
		fs:      fs,
	}
}

// WriteDefaultSuite writes the default suite descriptor listing the given
// packages to a new temporary file and returns its absolute path. Every call
// creates a new file; the manager tracks it for cleanup.
func (m *Manager) WriteDefaultSuite(packages []string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, err := m.fs.CreateTemp(m.baseDir, filePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create suite descriptor: %w", err)
	}
	if err := m.fs.WriteFile(path, defaultSuite(packages), filePerm); err != nil {
		// The empty temp file is useless without content; drop it.
		if rmErr := m.fs.Remove(path); rmErr != nil {
			slog.Warn("Failed to remove incomplete suite descriptor", "path", path, "error", rmErr)
		}
		return "", fmt.Errorf("failed to write suite descriptor %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	m.files[abs] = true
	return abs, nil
}

// Files returns the paths of all descriptors currently managed.
func (m *Manager) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	return paths
}

// CleanupFile removes a single managed descriptor.
func (m *Manager) CleanupFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.files[path] {
		return fmt.Errorf("%w: %s", ErrFileNotManaged, path)
	}
	if err := m.fs.Remove(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCleanupFailed, path, err)
	}
	delete(m.files, path)
	return nil
}

// Cleanup removes all managed descriptors, best effort. Removal failures are
// logged and collected; cleanup continues with the remaining files.
func (m *Manager) Cleanup() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs error
	for path := range m.files {
		if err := m.fs.Remove(path); err != nil {
			slog.Warn("Failed to remove suite descriptor", "path", path, "error", err)
			errs = errors.Join(errs, fmt.Errorf("%w: %s: %w", ErrCleanupFailed, path, err))
			continue
		}
		delete(m.files, path)
	}
	return errs
}
