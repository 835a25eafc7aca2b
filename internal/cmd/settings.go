package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"themeconv/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Init SettingsInitCmd `cmd:"init" help:"Write the effective settings to the settings file"`
	Show SettingsShowCmd `cmd:"show" help:"Show settings file location and effective values" default:"1"`
}

// SettingsShowCmd displays effective settings
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	settings := cli.Container.Settings

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"settings":      settings,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "source_dir\t%s\n", settings.SourceDir)
	fmt.Fprintf(w, "output_dir\t%s\n", settings.OutputDir)
	fmt.Fprintf(w, "follow_symlinks\t%t\n", settings.FollowSymlinks)
	fmt.Fprintf(w, "preserve_symlinks\t%t\n", settings.PreserveSymlinks)
	fmt.Fprintf(w, "strip_decorations\t%t\n", settings.StripDecorations)
	fmt.Fprintf(w, "sort\t%t\n", settings.Sort)
	fmt.Fprintf(w, "history\t%t\n", settings.History)
	fmt.Fprintf(w, "debug\t%t\n", settings.Debug)
	fmt.Fprintf(w, "max_log_files\t%d\n", settings.MaxLogFiles)
	w.Flush()

	fmt.Println()
	fmt.Println("Every key can also be set with a THEMECONV_ environment variable (e.g. THEMECONV_SOURCE_DIR).")
	return nil
}

// SettingsInitCmd writes the settings file
type SettingsInitCmd struct {
	Force bool `help:"Overwrite an existing settings file"`
}

// Run executes the init command
func (s *SettingsInitCmd) Run(cli *CLI) error {
	path := config.GetSettingsPath()
	if _, err := os.Stat(path); err == nil && !s.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check settings file: %w", err)
	}

	if err := config.SaveSettings(cli.Container.Settings); err != nil {
		return err
	}
	fmt.Printf("Settings written to %s\n", path)
	return nil
}
