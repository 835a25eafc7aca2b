package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"themeconv/internal/config"
	"themeconv/internal/domain"
	"themeconv/internal/logging"
	"themeconv/internal/theme"
)

// ConvertCmd converts every theme in a source directory
type ConvertCmd struct {
	DryRun           bool     `help:"Show what would be converted without writing anything"`
	Interactive      bool     `help:"Choose themes from a list" short:"i"`
	NoFollowSymlinks bool     `help:"Skip theme directories that are symbolic links"`
	NoHistory        bool     `help:"Do not record this run in the history database"`
	Output           string   `help:"Output root directory (default from settings, ./build/themes)" short:"o" type:"path"`
	PreserveSymlinks bool     `help:"Report paths as given instead of canonicalizing symbolic links"`
	Sort             bool     `help:"Process themes in name order"`
	Source           string   `help:"Directory containing one sub-directory per theme" short:"s" type:"path"`
	StripDecorations bool     `help:"Strip omarchy-/theme- prefixes and -theme/-omarchy suffixes from names"`
	Themes           []string `help:"Convert only these themes (repeatable)" name:"theme" short:"t"`
}

// Run executes the batch conversion
func (c *ConvertCmd) Run(cli *CLI) error {
	opts := c.options(cli.Container.Settings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, results, err := cli.Container.ConverterService.Run(ctx, opts)
	if err != nil {
		return err
	}

	printResults(os.Stdout, results)
	fmt.Println()
	fmt.Println(theme.TitleStyle.Render(summary.String()))

	logging.Logger.Info("Convert command finished", "summary", summary.String())
	return nil
}

// options merges flags over settings. A flag only wins when it is set.
func (c *ConvertCmd) options(settings *config.Settings) domain.Options {
	opts := domain.Options{
		DryRun:            c.DryRun,
		FollowDirSymlinks: settings.FollowSymlinks && !c.NoFollowSymlinks,
		Interactive:       c.Interactive,
		OutputDir:         settings.OutputDir,
		Policy:            domain.PolicyResolve,
		Record:            settings.History && !c.NoHistory,
		Sort:              settings.Sort || c.Sort,
		SourceDir:         settings.SourceDir,
		StripDecorations:  settings.StripDecorations || c.StripDecorations,
		Themes:            c.Themes,
	}
	if c.Source != "" {
		opts.SourceDir = config.ExpandPath(c.Source)
	}
	if c.Output != "" {
		opts.OutputDir = config.ExpandPath(c.Output)
	}
	if settings.PreserveSymlinks || c.PreserveSymlinks {
		opts.Policy = domain.PolicyPreserve
	}
	return opts
}

func printResults(w io.Writer, results []domain.ConversionResult) {
	for _, r := range results {
		symbol := theme.OutcomeStyle(r.Outcome).Render(r.Outcome.Symbol())
		switch r.Outcome {
		case domain.OutcomeSuccess:
			fmt.Fprintf(w, "  %s %s %s (%d files)\n", symbol, r.ThemeName, theme.PathStyle.Render(r.Target), len(r.Files))
		case domain.OutcomePlanned:
			fmt.Fprintf(w, "  %s %s: %s %s %s\n", symbol, r.ThemeName,
				theme.PathStyle.Render(r.Source), domain.SymbolPlanned, theme.PathStyle.Render(r.Target))
		default:
			fmt.Fprintf(w, "  %s %s: %v\n", symbol, r.ThemeName, r.Err)
		}
	}
}
