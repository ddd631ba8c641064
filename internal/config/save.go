package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileName is the config file name, in the working directory and in the user
// config directory alike.
const fileName = "hillvacuum.yaml"

// Save writes the config to the user's config directory, where Load finds
// it again.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), fileName))
}

// SaveTo writes the config to a specific path, creating parent directories
// as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
