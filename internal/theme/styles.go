package theme

import (
	"github.com/charmbracelet/lipgloss"

	"themeconv/internal/domain"
)

// Main CLI styles
var (
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Outcome styles
var (
	FailureStyle = lipgloss.NewStyle().
			Foreground(ColorFailure)

	PlannedStyle = lipgloss.NewStyle().
			Foreground(ColorPlanned)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Error styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	RemedyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// OutcomeStyle returns the style for an outcome symbol
func OutcomeStyle(o domain.Outcome) lipgloss.Style {
	switch o {
	case domain.OutcomeSuccess:
		return SuccessStyle
	case domain.OutcomePlanned:
		return PlannedStyle
	default:
		return FailureStyle
	}
}

// Swatch renders a block painted with a palette color, followed by the value.
// Values lipgloss cannot interpret render as plain text.
func Swatch(value domain.ColorValue) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(string(value))).
		Render("    ")
	return block + " " + string(value)
}
