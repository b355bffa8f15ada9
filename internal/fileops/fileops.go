package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrConfigNotFound is returned when a configuration file does not exist
var ErrConfigNotFound = errors.New("configuration file not found")

// FileOps interface defines operations for managing files in the ttsmini config directory
type FileOps interface {
	// GetConfigDir returns the full path to the ttsmini config directory
	GetConfigDir() string

	// GetOutputsDir returns the full path to the default outputs directory
	GetOutputsDir() string

	// GetModelsDir returns the full path to the voice model cache directory
	GetModelsDir() string

	// SaveConfig saves data to a file in the config directory
	SaveConfig(filename string, data []byte) error

	// LoadConfig loads data from a file in the config directory
	LoadConfig(filename string) ([]byte, error)

	// EnsureDirectories creates necessary directories if they don't exist
	EnsureDirectories() error
}

// DefaultFileOps implements FileOps interface
type DefaultFileOps struct {
	configDir string
}

// NewDefaultFileOps creates a new DefaultFileOps instance
func NewDefaultFileOps() (*DefaultFileOps, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return &DefaultFileOps{
		configDir: filepath.Join(homeDir, ".config", "ttsmini"),
	}, nil
}

func (f *DefaultFileOps) GetConfigDir() string {
	return f.configDir
}

func (f *DefaultFileOps) GetOutputsDir() string {
	return filepath.Join(f.configDir, "outputs")
}

func (f *DefaultFileOps) GetModelsDir() string {
	return filepath.Join(f.configDir, "models")
}

func (f *DefaultFileOps) SaveConfig(filename string, data []byte) error {
	if err := f.EnsureDirectories(); err != nil {
		return err
	}

	path := filepath.Join(f.configDir, filename)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (f *DefaultFileOps) LoadConfig(filename string) ([]byte, error) {
	path := filepath.Join(f.configDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}

func (f *DefaultFileOps) EnsureDirectories() error {
	dirs := []string{
		f.configDir,
		f.GetOutputsDir(),
		f.GetModelsDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
