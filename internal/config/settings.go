package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when neither flags, env nor settings file set a value
const (
	DefaultOutputDir   = "./build/themes"
	DefaultMaxLogFiles = 1000
	envPrefix          = "THEMECONV"
	settingsFileType   = "yaml"
)

// DefaultSourceDir returns the Omarchy theme directory under the user config home
func DefaultSourceDir() string {
	return filepath.Join(GetConfigHome(), "omarchy", "themes")
}

// Settings represents $THEMECONV_HOME/settings.yaml
type Settings struct {
	Debug            bool   `json:"debug" mapstructure:"debug"`
	FollowSymlinks   bool   `json:"follow_symlinks" mapstructure:"follow_symlinks"`
	History          bool   `json:"history" mapstructure:"history"`
	MaxLogFiles      int    `json:"max_log_files" mapstructure:"max_log_files"`
	OutputDir        string `json:"output_dir" mapstructure:"output_dir"`
	PreserveSymlinks bool   `json:"preserve_symlinks" mapstructure:"preserve_symlinks"`
	Sort             bool   `json:"sort" mapstructure:"sort"`
	SourceDir        string `json:"source_dir" mapstructure:"source_dir"`
	StripDecorations bool   `json:"strip_decorations" mapstructure:"strip_decorations"`
}

// newViper builds a viper instance with defaults and env binding
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(settingsFileType)

	v.SetDefault("debug", false)
	v.SetDefault("follow_symlinks", true)
	v.SetDefault("history", true)
	v.SetDefault("max_log_files", DefaultMaxLogFiles)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("preserve_symlinks", false)
	v.SetDefault("sort", false)
	v.SetDefault("source_dir", DefaultSourceDir())
	v.SetDefault("strip_decorations", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadSettings loads settings from $THEMECONV_HOME/settings.yaml.
// A missing file yields defaults (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}

	settings.SourceDir = ExpandPath(settings.SourceDir)
	settings.OutputDir = ExpandPath(settings.OutputDir)

	return &settings, nil
}

// SaveSettings writes settings to $THEMECONV_HOME/settings.yaml
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType(settingsFileType)
	v.Set("debug", settings.Debug)
	v.Set("follow_symlinks", settings.FollowSymlinks)
	v.Set("history", settings.History)
	v.Set("max_log_files", settings.MaxLogFiles)
	v.Set("output_dir", settings.OutputDir)
	v.Set("preserve_symlinks", settings.PreserveSymlinks)
	v.Set("sort", settings.Sort)
	v.Set("source_dir", settings.SourceDir)
	v.Set("strip_decorations", settings.StripDecorations)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// DefaultSettings returns the built-in defaults without reading the settings file or env
func DefaultSettings() *Settings {
	return &Settings{
		FollowSymlinks: true,
		History:        true,
		MaxLogFiles:    DefaultMaxLogFiles,
		OutputDir:      DefaultOutputDir,
		SourceDir:      DefaultSourceDir(),
	}
}
