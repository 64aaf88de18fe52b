package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vibe/internal/backup"
	"github.com/thoreinstein/vibe/internal/errors"
	"github.com/thoreinstein/vibe/internal/paths"
	"github.com/thoreinstein/vibe/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vibe configuration",
	Long: `Manage vibe configuration stored in ~/.config/vibe/config.yaml.

Without a subcommand, lists the effective configuration values.`,
	Example: `  # Show effective configuration
  vibe config

  # Create a config file with defaults
  vibe config init

  # Show where configuration is read from
  vibe config path

See Also: vibe deploy, vibe targets`,
	RunE: runConfigList,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with default values",
	Long: `Create ~/.config/vibe/config.yaml populated with default values.

Fails if the file already exists; pass --force to overwrite it.`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file locations",
	Long: `Show the vibe config file in use and the resolved location of the
canonical MCP settings document.`,
	RunE: runConfigPath,
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	effective := map[string]any{
		"settings_file": viper.GetString("settings_file"),
		"backup": map[string]any{
			"retention_count": viper.GetInt("backup.retention_count"),
		},
	}

	data, err := yaml.Marshal(effective)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := defaultConfigPath()

	if !configInitForce {
		if _, err := os.Stat(configPath); err == nil {
			err := errors.Newf("config file already exists at %s", configPath)
			return errors.NewUserError(err, "Pass --force to overwrite it")
		}
	}

	if err := paths.EnsureDir(filepath.Dir(configPath), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(configPath, defaultConfigDocument()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	used := viper.ConfigFileUsed()
	if used == "" {
		fmt.Fprintf(w, "config:   %s %s(not found, using defaults)%s\n",
			defaultConfigPath(), colorGray, colorReset)
	} else {
		fmt.Fprintf(w, "config:   %s\n", used)
	}

	settings := loadedConfig().SettingsFile
	if settings == "" {
		resolved, err := paths.SettingsPath()
		if err != nil {
			fmt.Fprintf(w, "settings: %s(no dotfiles directory found)%s\n", colorGray, colorReset)
			return nil
		}
		settings = resolved
	}
	fmt.Fprintf(w, "settings: %s\n", settings)
	return nil
}

// defaultConfigPath is where config init writes and implicit loads look last.
func defaultConfigPath() string {
	return filepath.Join(paths.AppConfigDir(), "config.yaml")
}

// defaultConfigDocument builds the YAML structure written by config init.
func defaultConfigDocument() map[string]any {
	return map[string]any{
		"backup": map[string]any{
			"retention_count": backup.DefaultRetentionCount,
		},
	}
}
