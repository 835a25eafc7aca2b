package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"themeconv/internal/cmd"
	"themeconv/internal/config"
	"themeconv/version"
)

func main() {
	// Load settings from $THEMECONV_HOME/settings.yaml
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = config.DefaultSettings()
	}

	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("themeconv"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		cmd.ReportError(os.Stderr, err)
		cli.Close()
		os.Exit(1)
	}
}
