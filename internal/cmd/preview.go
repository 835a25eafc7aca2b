package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"themeconv/internal/domain"
	"themeconv/internal/theme"
)

// PreviewCmd prints the resolved palette of a theme with color swatches
type PreviewCmd struct {
	Dir string `arg:"" help:"Theme directory" type:"path"`
}

// Run executes the preview command
func (p *PreviewCmd) Run(cli *CLI) error {
	palette, err := cli.Container.Parser.Parse(p.Dir)
	if err != nil {
		return err
	}

	fmt.Println(theme.TitleStyle.Render(p.Dir))
	fmt.Println(theme.HintStyle.Render(palette.SourcePath))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, k := range domain.ColorKeys() {
		origin := ""
		if !palette.Base.Has(k) {
			origin = theme.HintStyle.Render("default")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", theme.LabelStyle.Render(string(k)), theme.Swatch(palette.Base.Lookup(k)), origin)
	}

	var extra []string
	for k := range palette.Base {
		if !domain.ColorKey(k).IsKnown() {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		fmt.Fprintf(w, "%s\t%s\t%s\n", theme.LabelStyle.Render(k), theme.Swatch(palette.Base[k]), theme.HintStyle.Render("unused"))
	}
	w.Flush()

	fmt.Println()
	fmt.Println(theme.SubtitleStyle.Render("ANSI"))
	for _, intensity := range domain.Intensities() {
		line := theme.LabelStyle.Render(fmt.Sprintf("%-7s", intensity))
		for _, c := range domain.AnsiColors() {
			line += " " + theme.Swatch(palette.Ansi.Lookup(intensity, c))
		}
		fmt.Println(line)
	}

	return nil
}
