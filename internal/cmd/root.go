package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"themeconv/internal/config"
	"themeconv/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Convert    ConvertCmd    `cmd:"convert" help:"Convert every theme in the source directory (default)" default:"1"`
	ConvertOne ConvertOneCmd `cmd:"convert-one" help:"Convert a single theme directory"`
	History    HistoryCmd    `cmd:"history" help:"Show previous conversion runs"`
	List       ListCmd       `cmd:"list" help:"List themes found in the source directory"`
	Preview    PreviewCmd    `cmd:"preview" help:"Show the resolved palette of a theme directory"`
	Settings   SettingsCmd   `cmd:"settings" help:"Show or initialize settings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		c.settings = settings
	}

	// Apply settings with proper precedence: CLI flags > env vars > settings.yaml > defaults.
	// Env vars are already merged into settings by viper.
	if c.MaxLogFiles == config.DefaultMaxLogFiles {
		c.MaxLogFiles = c.settings.MaxLogFiles
	}
	if !c.Debug && c.settings.Debug {
		c.Debug = true
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("THEMECONV_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("THEMECONV_DEBUG_FILE", logFilePath)
		}
	}

	// Create container AFTER logging is initialized so GORM logs go to the right place
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
