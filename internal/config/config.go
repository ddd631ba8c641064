// Package config handles editor configuration loading and management.
package config

import "time"

// Config holds all editor settings.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Autosave AutosaveConfig `yaml:"autosave"`
	Watch    WatchConfig    `yaml:"watch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig holds paths to the editor's data sources.
type DataConfig struct {
	ThingDirs  []string `yaml:"thing_dirs"` // Directories scanned for .ini thing definitions
	Animations string   `yaml:"animations"` // Optional .anms library loaded on startup
	PropsLib   string   `yaml:"props"`      // Optional .prps library loaded on startup
}

// AutosaveConfig holds document autosave settings.
type AutosaveConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Dir      string        `yaml:"dir"`
	Keep     int           `yaml:"keep"` // Autosaves retained per document
}

// WatchConfig holds thing-definition reload settings.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			ThingDirs: []string{"things"},
		},
		Autosave: AutosaveConfig{
			Enabled:  true,
			Interval: 5 * time.Minute,
			Dir:      "autosaves",
			Keep:     3,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
