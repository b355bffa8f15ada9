package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/vahdetkaratas/tts-mini-assistant/internal/fileops"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	configFilename = "ttsmini.yaml"
)

// LoadConfig reads the yaml config from the ttsmini config directory.
// Returns (nil, nil) when no config file exists yet; defaults apply then.
// The OPENAI_API_KEY environment variable always wins over the file value.
func LoadConfig() (*types.Config, error) {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file operations: %w", err)
	}

	if err := fileOps.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	data, err := fileOps.LoadConfig(configFilename)
	if err != nil {
		if errors.Is(err, fileops.ErrConfigNotFound) {
			return applyEnv(&types.Config{}), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config types.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return applyEnv(&config), nil
}

// SaveConfig writes the config back to the ttsmini config directory
func SaveConfig(config *types.Config) error {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return fmt.Errorf("failed to initialize file operations: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fileOps.SaveConfig(configFilename, data); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

func applyEnv(config *types.Config) *types.Config {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.TTS.OpenAI.APIKey = key
	}
	return config
}
