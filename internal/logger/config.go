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

// loggingFile is the layout of a logging YAML file
type loggingFile struct {
	Logging *Config `yaml:"logging"`
}

// DefaultConfig returns console-only text logging at WARNING, which keeps
// the playground's own output readable.
func DefaultConfig() Config {
	return Config{
		Level:          "WARNING",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/playground.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// LoadConfig loads logging configuration from a YAML file and applies
// environment variable overrides. A missing file yields the defaults; a file
// that cannot be parsed is an error.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			// Decoding over the defaults keeps any key the file leaves out
			wrapper := loggingFile{Logging: &config}
			if err := yaml.Unmarshal(data, &wrapper); err != nil {
				return DefaultConfig(), err
			}
		case !os.IsNotExist(err):
			return config, err
		}
	}

	applyEnv(&config)
	return config, nil
}

func applyEnv(config *Config) {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = level
	}

	if format := os.Getenv("LOG_CONSOLE_FORMAT"); format != "" {
		config.ConsoleFormat = format
	}

	if enabled := os.Getenv("LOG_FILE_ENABLED"); enabled != "" {
		if v, err := strconv.ParseBool(enabled); err == nil {
			config.FileEnabled = v
		}
	}

	if path := os.Getenv("LOG_FILE_PATH"); path != "" {
		config.FilePath = path
	}
}
