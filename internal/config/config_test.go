package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/vibe/internal/backup"
	"github.com/thoreinstein/vibe/internal/errors"
)

func TestInit_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	Init()

	assert.Equal(t, backup.DefaultRetentionCount, viper.GetInt("backup.retention_count"))
	assert.Empty(t, viper.GetString("settings_file"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, backup.DefaultRetentionCount, cfg.Backup.RetentionCount)
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("settings_file: /dotfiles/mcp-settings.json\nbackup:\n  retention_count: 3\n")
	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	Init()

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/dotfiles/mcp-settings.json", cfg.SettingsFile)
	assert.Equal(t, 3, cfg.Backup.RetentionCount)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	_, err := Load("/non/existent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("VIBE_BACKUP_RETENTION_COUNT", "9")

	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Backup.RetentionCount)
}

func TestLoad_InvalidConfig(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("backup:\n  retention_count: -1\n"), 0o600))

	Init()

	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetentionNegative))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"nil config", nil, true},
		{"defaults", Default(), false},
		{"negative retention", &Config{Backup: BackupConfig{RetentionCount: -1}}, true},
		{"settings file set", &Config{SettingsFile: "/dotfiles/mcp-settings.json"}, false},
		{"settings file null byte", &Config{SettingsFile: "bad\x00path"}, true},
		{"settings file dot", &Config{SettingsFile: "."}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}
