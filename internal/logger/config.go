package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// fileConfig is the part of the mazeforge config file this package reads
type fileConfig struct {
	Logging *Config `yaml:"logging"`
}

// DefaultConfig logs warnings and errors to stderr only, so log lines do
// not interleave with a rendered maze on stdout.
func DefaultConfig() Config {
	return Config{
		Level:          "WARN",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/mazeforge.log",
		FileFormat:     "json",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// LoadConfig reads the logging section of the config file at configPath
// and applies environment overrides. A missing or unreadable file yields
// the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err == nil && fc.Logging != nil {
				config.merge(*fc.Logging)
			}
		}
	}

	config.applyEnv()
	return config, nil
}

// merge copies the set fields of loaded over c. Booleans are taken as
// written since the section was present.
func (c *Config) merge(loaded Config) {
	if loaded.Level != "" {
		c.Level = loaded.Level
	}
	c.ConsoleEnabled = loaded.ConsoleEnabled
	if loaded.ConsoleFormat != "" {
		c.ConsoleFormat = loaded.ConsoleFormat
	}
	c.FileEnabled = loaded.FileEnabled
	if loaded.FilePath != "" {
		c.FilePath = loaded.FilePath
	}
	if loaded.FileFormat != "" {
		c.FileFormat = loaded.FileFormat
	}
	if loaded.FileMaxSizeMB > 0 {
		c.FileMaxSizeMB = loaded.FileMaxSizeMB
	}
	if loaded.FileMaxBackups > 0 {
		c.FileMaxBackups = loaded.FileMaxBackups
	}
	if loaded.FileMaxAgeDays > 0 {
		c.FileMaxAgeDays = loaded.FileMaxAgeDays
	}
}

func (c *Config) applyEnv() {
	if level := os.Getenv("MAZE_LOG_LEVEL"); level != "" {
		c.Level = level
	}
	if format := os.Getenv("MAZE_LOG_FORMAT"); format != "" {
		c.ConsoleFormat = format
	}
	if enabled := os.Getenv("MAZE_LOG_FILE_ENABLED"); enabled != "" {
		if v, err := strconv.ParseBool(enabled); err == nil {
			c.FileEnabled = v
		}
	}
	if path := os.Getenv("MAZE_LOG_FILE_PATH"); path != "" {
		c.FilePath = path
	}
}
