// Package config provides configuration management for vibe using Viper.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/vibe/internal/backup"
	"github.com/thoreinstein/vibe/internal/errors"
	"github.com/thoreinstein/vibe/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "vibe"

// Config represents the top-level configuration structure.
type Config struct {
	// SettingsFile overrides the canonical settings document location.
	// Empty means resolve it from the dotfiles convention.
	SettingsFile string `mapstructure:"settings_file" yaml:"settings_file,omitempty"`

	// Backup controls backups of target config files.
	Backup BackupConfig `mapstructure:"backup" yaml:"backup"`
}

// BackupConfig contains backup behavior settings.
type BackupConfig struct {
	// RetentionCount is how many backups to keep per target file.
	RetentionCount int `mapstructure:"retention_count" yaml:"retention_count"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Backup: BackupConfig{
			RetentionCount: backup.DefaultRetentionCount,
		},
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.AppConfigDir())

	// Environment variable support, e.g. VIBE_BACKUP_RETENTION_COUNT
	viper.SetEnvPrefix("VIBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("settings_file", "")
	viper.SetDefault("backup.retention_count", backup.DefaultRetentionCount)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found
// (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error.
			// Otherwise an implicit load falls back to defaults.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}
