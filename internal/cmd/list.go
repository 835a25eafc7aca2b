package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"themeconv/internal/adapters/filesystem"
	"themeconv/internal/config"
	"themeconv/internal/domain"
)

// ListCmd lists discovered themes
type ListCmd struct {
	Format           string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Source           string `help:"Directory containing one sub-directory per theme" short:"s" type:"path"`
	StripDecorations bool   `help:"Strip known prefixes and suffixes from names"`
}

type listEntry struct {
	Name    string `json:"name"`
	Output  string `json:"output"`
	Palette string `json:"palette"`
	Source  string `json:"source"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	settings := cli.Container.Settings
	convert := ConvertCmd{Source: l.Source, StripDecorations: l.StripDecorations, Sort: true}
	opts := convert.options(settings)

	themes, err := cli.Container.ConverterService.Discover(opts)
	if err != nil {
		return err
	}

	entries := make([]listEntry, len(themes))
	for i, t := range themes {
		entries[i] = newListEntry(t)
	}

	if l.Format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPALETTE\tSOURCE\tOUTPUT")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Palette, e.Source, e.Output)
	}
	w.Flush()

	fmt.Printf("\n%d theme(s) in %s\n", len(entries), config.ExpandPath(opts.SourceDir))
	return nil
}

func newListEntry(t domain.ThemeDescriptor) listEntry {
	palette := ""
	if path, ok := filesystem.FindPaletteFile(t.SourceDir); ok {
		palette = filepath.Base(path)
	}
	return listEntry{
		Name:    t.Name,
		Output:  t.OutputDir,
		Palette: palette,
		Source:  t.SourceDir,
	}
}
