package config

import (
	"os"
	"path/filepath"
)

// GetHome returns THEMECONV_HOME or the ~/.themeconv default
func GetHome() string {
	home := os.Getenv("THEMECONV_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".themeconv"
		}
		return filepath.Join(homeDir, ".themeconv")
	}
	return ExpandPath(home)
}

// GetDBPath returns $THEMECONV_HOME/history.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "history.db")
}

// GetSettingsPath returns $THEMECONV_HOME/settings.yaml
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.yaml")
}

// GetConfigHome returns XDG_CONFIG_HOME or ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".config"
	}
	return filepath.Join(homeDir, ".config")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
