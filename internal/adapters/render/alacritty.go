package render

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"themeconv/internal/domain"
)

type alacrittyConfig struct {
	Colors alacrittyColors `toml:"colors"`
}

type alacrittyColors struct {
	Primary   alacrittyPrimary   `toml:"primary"`
	Cursor    alacrittyCursor    `toml:"cursor"`
	Selection alacrittySelection `toml:"selection"`
	Normal    alacrittyAnsi      `toml:"normal"`
	Bright    alacrittyAnsi      `toml:"bright"`
	Dim       alacrittyAnsi      `toml:"dim"`
}

type alacrittyPrimary struct {
	Background    domain.ColorValue `toml:"background"`
	Foreground    domain.ColorValue `toml:"foreground"`
	DimForeground domain.ColorValue `toml:"dim_foreground"`
}

type alacrittyCursor struct {
	Text   domain.ColorValue `toml:"text"`
	Cursor domain.ColorValue `toml:"cursor"`
}

type alacrittySelection struct {
	Text       domain.ColorValue `toml:"text"`
	Background domain.ColorValue `toml:"background"`
}

type alacrittyAnsi struct {
	Black   domain.ColorValue `toml:"black"`
	Red     domain.ColorValue `toml:"red"`
	Green   domain.ColorValue `toml:"green"`
	Yellow  domain.ColorValue `toml:"yellow"`
	Blue    domain.ColorValue `toml:"blue"`
	Magenta domain.ColorValue `toml:"magenta"`
	Cyan    domain.ColorValue `toml:"cyan"`
	White   domain.ColorValue `toml:"white"`
}

func newAlacrittyAnsi(tables domain.AnsiTables, intensity domain.Intensity) alacrittyAnsi {
	return alacrittyAnsi{
		Black:   tables.Lookup(intensity, domain.AnsiBlack),
		Red:     tables.Lookup(intensity, domain.AnsiRed),
		Green:   tables.Lookup(intensity, domain.AnsiGreen),
		Yellow:  tables.Lookup(intensity, domain.AnsiYellow),
		Blue:    tables.Lookup(intensity, domain.AnsiBlue),
		Magenta: tables.Lookup(intensity, domain.AnsiMagenta),
		Cyan:    tables.Lookup(intensity, domain.AnsiCyan),
		White:   tables.Lookup(intensity, domain.AnsiWhite),
	}
}

// buildAlacritty marshals the palette into alacritty's [colors.*] tables
func buildAlacritty(data *templateData) ([]byte, error) {
	base := data.palette.Base
	cfg := alacrittyConfig{
		Colors: alacrittyColors{
			Primary: alacrittyPrimary{
				Background:    base.Lookup(domain.KeyPrimaryBg),
				Foreground:    base.Lookup(domain.KeyTextPrimary),
				DimForeground: base.Lookup(domain.KeyTextDim),
			},
			Cursor: alacrittyCursor{
				Text:   base.Lookup(domain.KeyPrimaryBg),
				Cursor: base.Lookup(domain.KeyPrimaryAccent),
			},
			Selection: alacrittySelection{
				Text:       base.Lookup(domain.KeyTextPrimary),
				Background: base.Lookup(domain.KeySelectionBg),
			},
			Normal: newAlacrittyAnsi(data.palette.Ansi, domain.IntensityNormal),
			Bright: newAlacrittyAnsi(data.palette.Ansi, domain.IntensityBright),
			Dim:    newAlacrittyAnsi(data.palette.Ansi, domain.IntensityDim),
		},
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s alacritty theme, generated by themeconv\n\n", data.Name)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode alacritty theme: %w", err)
	}
	return buf.Bytes(), nil
}
