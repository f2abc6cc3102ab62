package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/jvmtools/go-testng-launcher/internal/common"
)

// Error definitions for the config package
var (
	// ErrInvalidConfigPath is returned when the config file path is invalid
	ErrInvalidConfigPath = errors.New("invalid config file path")
)

// Loader handles loading and validating run configurations
type Loader struct {
	fs common.FileSystem
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return NewLoaderWithFS(common.NewDefaultFileSystem())
}

// NewLoaderWithFS creates a new config loader with a custom FileSystem
func NewLoaderWithFS(fs common.FileSystem) *Loader {
	return &Loader{
		fs: fs,
	}
}

// LoadConfig loads and validates a run configuration from a file path.
func (l *Loader) LoadConfig(configPath string) (*RunSpec, error) {
	if configPath == "" {
		return nil, ErrInvalidConfigPath
	}

	content, err := l.fs.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return l.Parse(content)
}

// Parse decodes a run configuration from TOML content. Enum-valued fields
// (parallel mechanism, failure policy, log level) are validated during
// decoding through their TextUnmarshaler implementations.
func (l *Loader) Parse(content []byte) (*RunSpec, error) {
	var spec RunSpec
	if err := toml.Unmarshal(content, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &spec, nil
}
