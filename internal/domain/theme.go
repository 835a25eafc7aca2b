package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Outcome is the result of converting one theme
type Outcome string

const (
	OutcomeFailure Outcome = "failure"
	OutcomePlanned Outcome = "planned"
	OutcomeSuccess Outcome = "success"
)

// Outcome symbols (Unicode)
const (
	SymbolFailure = "✗"
	SymbolPlanned = "→"
	SymbolSuccess = "✓"
)

// Symbol returns the display symbol for the outcome
func (o Outcome) Symbol() string {
	switch o {
	case OutcomeSuccess:
		return SymbolSuccess
	case OutcomePlanned:
		return SymbolPlanned
	default:
		return SymbolFailure
	}
}

// ThemeDescriptor identifies a discovered theme. It is not modified after discovery.
type ThemeDescriptor struct {
	CanonicalDir string
	Name         string
	OutputDir    string
	SourceDir    string
}

// Palette is everything parsed from one theme's palette file.
// A new Palette is built for every theme; nothing is shared between themes.
type Palette struct {
	Ansi       AnsiTables
	Base       ColorTable
	SourcePath string
}

// NewPalette returns an empty palette
func NewPalette() Palette {
	return Palette{
		Ansi: NewAnsiTables(),
		Base: NewColorTable(),
	}
}

// ConversionResult records what happened to one theme in a batch
type ConversionResult struct {
	Err       error
	Files     []string
	Outcome   Outcome
	Source    string
	ThemeName string
	Target    string
}

// Summary aggregates a batch
type Summary struct {
	Attempted   int
	DryRun      bool
	FailedNames []string
	Failed      int
	Succeeded   int
}

// Add accounts for one result
func (s *Summary) Add(r ConversionResult) {
	s.Attempted++
	switch r.Outcome {
	case OutcomeSuccess, OutcomePlanned:
		s.Succeeded++
	default:
		s.Failed++
		s.FailedNames = append(s.FailedNames, r.ThemeName)
	}
}

// String renders the human-readable batch summary
func (s Summary) String() string {
	var b strings.Builder
	if s.DryRun {
		fmt.Fprintf(&b, "Dry run: %d theme(s) planned", s.Attempted)
		return b.String()
	}
	fmt.Fprintf(&b, "Converted %d theme(s): %d succeeded, %d failed", s.Attempted, s.Succeeded, s.Failed)
	if len(s.FailedNames) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(s.FailedNames, ", "))
	}
	return b.String()
}

// SymlinkPolicy controls whether paths are canonicalized
type SymlinkPolicy string

const (
	PolicyPreserve SymlinkPolicy = "preserve"
	PolicyResolve  SymlinkPolicy = "resolve"
)

// Options is the fully-resolved input to a batch conversion
type Options struct {
	DryRun            bool
	FollowDirSymlinks bool
	Interactive       bool
	OutputDir         string
	Policy            SymlinkPolicy
	Record            bool
	Sort              bool
	SourceDir         string
	StripDecorations  bool
	Themes            []string
}

// RunRecord is a persisted batch, as stored in the history ledger
type RunRecord struct {
	Attempted int
	Failed    int
	ID        string
	OutputDir string
	SourceDir string
	StartedAt time.Time
	Succeeded int
	Themes    []RunThemeRecord
}

// RunThemeRecord is one theme's entry in a RunRecord
type RunThemeRecord struct {
	Error     string
	FileCount int
	Outcome   Outcome
	ThemeName string
}

// Known decorations trimmed from directory names when deriving theme names
var (
	themeNamePrefixes = []string{"omarchy-", "theme-"}
	themeNameSuffixes = []string{"-theme", "-omarchy"}
)

// StripThemeDecorations removes one known prefix and one known suffix.
// A name that would become empty is returned unchanged.
func StripThemeDecorations(name string) string {
	stripped := name
	for _, p := range themeNamePrefixes {
		if strings.HasPrefix(stripped, p) {
			stripped = strings.TrimPrefix(stripped, p)
			break
		}
	}
	for _, s := range themeNameSuffixes {
		if strings.HasSuffix(stripped, s) {
			stripped = strings.TrimSuffix(stripped, s)
			break
		}
	}
	if stripped == "" {
		return name
	}
	return stripped
}

// SanitizeThemeName converts a directory name into a name safe for output paths.
// - Alphanumeric, underscores, hyphens, and periods are kept
// - Spaces, parentheses, and slashes become hyphens (consecutive ones collapsed)
// - Other special characters are removed
func SanitizeThemeName(name string) string {
	var result strings.Builder
	lastWasHyphen := false

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '.' {
			result.WriteRune(r)
			lastWasHyphen = false
		} else if r == '-' {
			if !lastWasHyphen {
				result.WriteRune('-')
			}
			lastWasHyphen = true
		} else if unicode.IsSpace(r) || r == '(' || r == ')' || r == '/' {
			if !lastWasHyphen && result.Len() > 0 {
				result.WriteRune('-')
				lastWasHyphen = true
			}
		}
	}

	return strings.Trim(result.String(), "-.")
}

// PaletteFileNames lists accepted palette file names in lookup order
var PaletteFileNames = []string{"colors.toml", "colors.yaml", "colors.yml", "colors.json"}
