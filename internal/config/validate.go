package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/vibe/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrRetentionNegative indicates the backup retention count is below zero.
	ErrRetentionNegative = errors.New("backup.retention_count must be >= 0")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Backup.RetentionCount < 0 {
		errs = append(errs, ErrRetentionNegative)
	}

	if cfg.SettingsFile != "" {
		if err := validatePath(cfg.SettingsFile); err != nil {
			errs = append(errs, errors.Wrapf(err, "settings_file: %s", cfg.SettingsFile))
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}
