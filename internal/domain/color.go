package domain

// ColorKey is a semantic color role looked up in a theme's base palette
type ColorKey string

const (
	KeyPrimaryBg       ColorKey = "primary_bg"
	KeySecondaryBg     ColorKey = "secondary_bg"
	KeyTertiaryBg      ColorKey = "tertiary_bg"
	KeyPrimaryAccent   ColorKey = "primary_accent"
	KeySecondaryAccent ColorKey = "secondary_accent"
	KeyTertiaryAccent  ColorKey = "tertiary_accent"
	KeyTextPrimary     ColorKey = "text_primary"
	KeyTextSecondary   ColorKey = "text_secondary"
	KeyTextDim         ColorKey = "text_dim"
	KeySuccess         ColorKey = "success"
	KeyWarning         ColorKey = "warning"
	KeyError           ColorKey = "error"
	KeyInfo            ColorKey = "info"
	KeySelectionBg     ColorKey = "selection_bg"
)

// ColorValue is a hex color string. It is written to output files verbatim.
type ColorValue string

// colorKeys lists the vocabulary in documentation order
var colorKeys = [...]ColorKey{
	KeyPrimaryBg,
	KeySecondaryBg,
	KeyTertiaryBg,
	KeyPrimaryAccent,
	KeySecondaryAccent,
	KeyTertiaryAccent,
	KeyTextPrimary,
	KeyTextSecondary,
	KeyTextDim,
	KeySuccess,
	KeyWarning,
	KeyError,
	KeyInfo,
	KeySelectionBg,
}

var colorDefaults = map[ColorKey]ColorValue{
	KeyPrimaryBg:       "#1a1b26",
	KeySecondaryBg:     "#24283b",
	KeyTertiaryBg:      "#414868",
	KeyPrimaryAccent:   "#7aa2f7",
	KeySecondaryAccent: "#bb9af7",
	KeyTertiaryAccent:  "#7dcfff",
	KeyTextPrimary:     "#c0caf5",
	KeyTextSecondary:   "#a9b1d6",
	KeyTextDim:         "#565f89",
	KeySuccess:         "#9ece6a",
	KeyWarning:         "#e0af68",
	KeyError:           "#f7768e",
	KeyInfo:            "#2ac3de",
	KeySelectionBg:     "#33467c",
}

// ColorKeys returns the full key vocabulary in a stable order
func ColorKeys() []ColorKey {
	keys := make([]ColorKey, len(colorKeys))
	copy(keys, colorKeys[:])
	return keys
}

// Default returns the documented fallback for the key.
// Unknown keys have no default and return "".
func (k ColorKey) Default() ColorValue {
	return colorDefaults[k]
}

// IsKnown reports whether k belongs to the fixed vocabulary
func (k ColorKey) IsKnown() bool {
	_, ok := colorDefaults[k]
	return ok
}

// ParseColorKey converts a string to a known ColorKey
func ParseColorKey(s string) (ColorKey, bool) {
	k := ColorKey(s)
	return k, k.IsKnown()
}

// ColorTable maps color keys to values. Keys outside the vocabulary are kept.
type ColorTable map[string]ColorValue

// NewColorTable returns an empty table
func NewColorTable() ColorTable {
	return make(ColorTable)
}

// Has reports whether the table defines key
func (t ColorTable) Has(key ColorKey) bool {
	_, ok := t[string(key)]
	return ok
}

// Lookup returns the table value for key, or the key's documented default
func (t ColorTable) Lookup(key ColorKey) ColorValue {
	if v, ok := t[string(key)]; ok {
		return v
	}
	return key.Default()
}

// Set stores a value for key
func (t ColorTable) Set(key string, value ColorValue) {
	t[key] = value
}

// Clone returns an independent copy of the table
func (t ColorTable) Clone() ColorTable {
	out := make(ColorTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
