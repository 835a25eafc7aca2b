package render

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"themeconv/internal/domain"
)

// templateData is the view every template is executed against.
// Color lookups always apply the documented defaults.
type templateData struct {
	Files          []fileEntry
	InstallTargets []installTarget
	Name           string
	palette        domain.Palette
}

type fileEntry struct {
	Name   string
	Origin string
}

type installTarget struct {
	Dest   string
	Source string
}

type colorRow struct {
	Key    string
	Origin string
	Value  domain.ColorValue
}

type ansiRow struct {
	Bright domain.ColorValue
	Dim    domain.ColorValue
	Name   domain.AnsiColor
	Normal domain.ColorValue
}

type ansiEntry struct {
	Index int
	Name  domain.AnsiColor
	Value domain.ColorValue
}

// installTargets maps generated files to the application config paths
// (relative to XDG_CONFIG_HOME) that install.sh links to the current theme
var installTargets = []installTarget{
	{Source: "mako.ini", Dest: "mako/config"},
	{Source: "swayosd.css", Dest: "swayosd/style.css"},
	{Source: "waybar.css", Dest: "waybar/theme.css"},
	{Source: "alacritty.toml", Dest: "alacritty/theme.toml"},
	{Source: "kitty.conf", Dest: "kitty/current-theme.conf"},
	{Source: "ghostty.conf", Dest: "ghostty/themes/themeconv"},
}

func newTemplateData(theme domain.ThemeDescriptor, palette domain.Palette, files []fileEntry) *templateData {
	return &templateData{
		Files:          files,
		InstallTargets: installTargets,
		Name:           theme.Name,
		palette:        palette,
	}
}

// Color returns the palette value for a known key
func (d *templateData) Color(key string) (domain.ColorValue, error) {
	k, ok := domain.ParseColorKey(key)
	if !ok {
		return "", fmt.Errorf("unknown color key %q", key)
	}
	return d.palette.Base.Lookup(k), nil
}

// Ansi returns the terminal color at an intensity
func (d *templateData) Ansi(intensity, color string) (domain.ColorValue, error) {
	i, err := domain.ParseIntensity(intensity)
	if err != nil {
		return "", err
	}
	c := domain.AnsiColor(color)
	if !isAnsiColor(c) {
		return "", fmt.Errorf("unknown ANSI color %q", color)
	}
	return d.palette.Ansi.Lookup(i, c), nil
}

// Ansi16 returns the normal colors as indexes 0-7 and the bright ones as 8-15
func (d *templateData) Ansi16() []ansiEntry {
	colors := domain.AnsiColors()
	entries := make([]ansiEntry, 0, 2*len(colors))
	for n, intensity := range []domain.Intensity{domain.IntensityNormal, domain.IntensityBright} {
		for i, c := range colors {
			entries = append(entries, ansiEntry{
				Index: n*len(colors) + i,
				Name:  c,
				Value: d.palette.Ansi.Lookup(intensity, c),
			})
		}
	}
	return entries
}

// BaseRows lists the full key vocabulary, marking values that came from defaults
func (d *templateData) BaseRows() []colorRow {
	keys := domain.ColorKeys()
	rows := make([]colorRow, 0, len(keys))
	for _, k := range keys {
		origin := "theme"
		if !d.palette.Base.Has(k) {
			origin = "default"
		}
		rows = append(rows, colorRow{Key: string(k), Origin: origin, Value: d.palette.Base.Lookup(k)})
	}
	return rows
}

// ExtraRows lists palette entries outside the known vocabulary, sorted by key
func (d *templateData) ExtraRows() []colorRow {
	var rows []colorRow
	for k, v := range d.palette.Base {
		if domain.ColorKey(k).IsKnown() {
			continue
		}
		rows = append(rows, colorRow{Key: k, Origin: "theme", Value: v})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

// AnsiRows lists every ANSI color across the three intensities
func (d *templateData) AnsiRows() []ansiRow {
	colors := domain.AnsiColors()
	rows := make([]ansiRow, 0, len(colors))
	for _, c := range colors {
		rows = append(rows, ansiRow{
			Bright: d.palette.Ansi.Lookup(domain.IntensityBright, c),
			Dim:    d.palette.Ansi.Lookup(domain.IntensityDim, c),
			Name:   c,
			Normal: d.palette.Ansi.Lookup(domain.IntensityNormal, c),
		})
	}
	return rows
}

// PaletteFile is the base name of the palette the theme was parsed from
func (d *templateData) PaletteFile() string {
	if d.palette.SourcePath == "" {
		return "built-in defaults"
	}
	return filepath.Base(d.palette.SourcePath)
}

// QuotedName is the theme name quoted for a POSIX shell
func (d *templateData) QuotedName() string {
	return "'" + strings.ReplaceAll(d.Name, "'", `'\''`) + "'"
}

func isAnsiColor(c domain.AnsiColor) bool {
	for _, known := range domain.AnsiColors() {
		if known == c {
			return true
		}
	}
	return false
}
