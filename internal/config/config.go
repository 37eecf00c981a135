// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rssowl/prefdeck/internal/langs"
)

// Config holds application configuration.
type Config struct {
	Documents DocumentsConfig
	History   HistoryConfig
	Workspace WorkspaceConfig
	UI        UIConfig

	// Languages extends the built-in language table. Each entry is a
	// [[languages]] block with id, name and optional extensions and
	// filenames; built-in names win a collision.
	Languages []langs.Language
}

// DocumentsConfig locates the preference documents.
type DocumentsConfig struct {
	Dir string
}

// HistoryConfig holds the action-history sqlite settings.
type HistoryConfig struct {
	Path    string
	Enabled bool
}

// WorkspaceConfig seeds the session when no folders are given on the
// command line.
type WorkspaceConfig struct {
	Folders []string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme        string
	PickerHeight int
}

// Load reads configuration from file and env. Env var overrides use prefix
// PREFDECK_.
func Load() (Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	configHome, err := os.UserConfigDir()
	if err != nil {
		configHome = filepath.Join(home, ".config")
	}

	v.SetDefault("documents.dir", filepath.Join(configHome, "prefdeck"))
	v.SetDefault("history.path", filepath.Join(home, ".local", "share", "prefdeck", "history.db"))
	v.SetDefault("history.enabled", true)
	v.SetDefault("workspace.folders", []string{})
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.picker_height", 12)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PREFDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(configHome, "prefdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PREFDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// Path reports where the config file lives: the PREFDECK_CONFIG override
// when set, otherwise config.toml under the user config directory.
func Path() (string, error) {
	if path := os.Getenv("PREFDECK_CONFIG"); path != "" {
		return path, nil
	}
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(configHome, "prefdeck", "config.toml"), nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("documents.dir", cfg.Documents.Dir)
	v.Set("history.path", cfg.History.Path)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("workspace.folders", cfg.Workspace.Folders)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.picker_height", cfg.UI.PickerHeight)
	if len(cfg.Languages) > 0 {
		extras := make([]map[string]any, 0, len(cfg.Languages))
		for _, l := range cfg.Languages {
			extras = append(extras, map[string]any{
				"id":         l.ID,
				"name":       l.Name,
				"extensions": l.Extensions,
				"filenames":  l.Filenames,
			})
		}
		v.Set("languages", extras)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func normalize(c Config) Config {
	if c.UI.PickerHeight < 4 || c.UI.PickerHeight > 40 {
		c.UI.PickerHeight = 12
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.Theme)) {
	case "light":
		c.UI.Theme = "light"
	default:
		c.UI.Theme = "dark"
	}
	return c
}
