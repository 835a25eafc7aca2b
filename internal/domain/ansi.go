package domain

import "fmt"

// AnsiColor names one of the 8 standard terminal colors
type AnsiColor string

const (
	AnsiBlack   AnsiColor = "black"
	AnsiRed     AnsiColor = "red"
	AnsiGreen   AnsiColor = "green"
	AnsiYellow  AnsiColor = "yellow"
	AnsiBlue    AnsiColor = "blue"
	AnsiMagenta AnsiColor = "magenta"
	AnsiCyan    AnsiColor = "cyan"
	AnsiWhite   AnsiColor = "white"
)

// Intensity selects one of the ANSI palette variants
type Intensity string

const (
	IntensityNormal Intensity = "normal"
	IntensityBright Intensity = "bright"
	IntensityDim    Intensity = "dim"
)

var ansiColors = [...]AnsiColor{
	AnsiBlack,
	AnsiRed,
	AnsiGreen,
	AnsiYellow,
	AnsiBlue,
	AnsiMagenta,
	AnsiCyan,
	AnsiWhite,
}

var intensities = [...]Intensity{IntensityNormal, IntensityBright, IntensityDim}

var ansiDefaults = map[Intensity]map[AnsiColor]ColorValue{
	IntensityNormal: {
		AnsiBlack:   "#15161e",
		AnsiRed:     "#f7768e",
		AnsiGreen:   "#9ece6a",
		AnsiYellow:  "#e0af68",
		AnsiBlue:    "#7aa2f7",
		AnsiMagenta: "#bb9af7",
		AnsiCyan:    "#7dcfff",
		AnsiWhite:   "#a9b1d6",
	},
	IntensityBright: {
		AnsiBlack:   "#414868",
		AnsiRed:     "#ff899d",
		AnsiGreen:   "#9fe044",
		AnsiYellow:  "#faba4a",
		AnsiBlue:    "#8db0ff",
		AnsiMagenta: "#c7a9ff",
		AnsiCyan:    "#a4daff",
		AnsiWhite:   "#c0caf5",
	},
	IntensityDim: {
		AnsiBlack:   "#0f0f14",
		AnsiRed:     "#b85a6a",
		AnsiGreen:   "#73954d",
		AnsiYellow:  "#a6814d",
		AnsiBlue:    "#5a78b8",
		AnsiMagenta: "#8b72b8",
		AnsiCyan:    "#5c9abf",
		AnsiWhite:   "#7f859f",
	},
}

// AnsiColors returns the 8 color names in terminal index order
func AnsiColors() []AnsiColor {
	out := make([]AnsiColor, len(ansiColors))
	copy(out, ansiColors[:])
	return out
}

// Intensities returns normal, bright and dim in that order
func Intensities() []Intensity {
	out := make([]Intensity, len(intensities))
	copy(out, intensities[:])
	return out
}

// Section is the palette file section holding this intensity's colors
func (i Intensity) Section() string {
	return "ansi_" + string(i)
}

// ParseIntensity converts a string to an Intensity
func ParseIntensity(s string) (Intensity, error) {
	for _, i := range intensities {
		if string(i) == s {
			return i, nil
		}
	}
	return "", fmt.Errorf("unknown ANSI intensity %q", s)
}

// AnsiDefault returns the documented fallback for a color at an intensity
func AnsiDefault(intensity Intensity, color AnsiColor) ColorValue {
	return ansiDefaults[intensity][color]
}

// AnsiTables holds one table per intensity. Any of them may be empty.
type AnsiTables struct {
	Normal ColorTable
	Bright ColorTable
	Dim    ColorTable
}

// NewAnsiTables returns three empty tables
func NewAnsiTables() AnsiTables {
	return AnsiTables{
		Normal: NewColorTable(),
		Bright: NewColorTable(),
		Dim:    NewColorTable(),
	}
}

// Table returns the table for an intensity
func (a AnsiTables) Table(intensity Intensity) ColorTable {
	switch intensity {
	case IntensityBright:
		return a.Bright
	case IntensityDim:
		return a.Dim
	default:
		return a.Normal
	}
}

// Lookup returns the value for color at intensity, or its documented default
func (a AnsiTables) Lookup(intensity Intensity, color AnsiColor) ColorValue {
	if v, ok := a.Table(intensity)[string(color)]; ok {
		return v
	}
	return AnsiDefault(intensity, color)
}
