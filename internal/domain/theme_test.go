package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeThemeName_KeepsAlphanumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"tokyo-night", "tokyo-night"},
		{"Nord2", "Nord2"},
		{"catppuccin_latte", "catppuccin_latte"},
		{"rose.pine", "rose.pine"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeThemeName(tt.input))
		})
	}
}

func TestSanitizeThemeName_SeparatorReplacement(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"space", "tokyo night", "tokyo-night"},
		{"multiple spaces", "tokyo   night", "tokyo-night"},
		{"parens", "gruvbox (dark)", "gruvbox-dark"},
		{"slash", "kanagawa/wave", "kanagawa-wave"},
		{"double hyphen", "everforest--dark", "everforest-dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeThemeName(tt.input))
		})
	}
}

func TestSanitizeThemeName_SpecialCharsRemoved(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"brackets", "nord[v2]", "nordv2"},
		{"hash", "matte#black", "matteblack"},
		{"quote", "ethan's", "ethans"},
		{"leading dot", ".hidden", "hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeThemeName(tt.input))
		})
	}
}

func TestSanitizeThemeName_EmptyResult(t *testing.T) {
	assert.Empty(t, SanitizeThemeName(""))
	assert.Empty(t, SanitizeThemeName("!@#$"))
	assert.Empty(t, SanitizeThemeName("   "))
}

func TestStripThemeDecorations(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"omarchy-tokyo-night", "tokyo-night"},
		{"nord-theme", "nord"},
		{"theme-gruvbox-theme", "gruvbox"},
		{"kanagawa-omarchy", "kanagawa"},
		{"plain", "plain"},
		{"omarchy-", "omarchy-"},
		{"-theme", "-theme"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripThemeDecorations(tt.input))
		})
	}
}

func TestSummary_Add(t *testing.T) {
	var s Summary
	s.Add(ConversionResult{ThemeName: "a", Outcome: OutcomeSuccess})
	s.Add(ConversionResult{ThemeName: "b", Outcome: OutcomeFailure})
	s.Add(ConversionResult{ThemeName: "c", Outcome: OutcomeSuccess})

	assert.Equal(t, 3, s.Attempted)
	assert.Equal(t, 2, s.Succeeded)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, []string{"b"}, s.FailedNames)
	assert.Equal(t, "Converted 3 theme(s): 2 succeeded, 1 failed (b)", s.String())
}

func TestSummary_DryRunString(t *testing.T) {
	s := Summary{DryRun: true}
	s.Add(ConversionResult{ThemeName: "a", Outcome: OutcomePlanned})

	assert.Equal(t, "Dry run: 1 theme(s) planned", s.String())
}

func TestOutcome_Symbol(t *testing.T) {
	assert.Equal(t, SymbolSuccess, OutcomeSuccess.Symbol())
	assert.Equal(t, SymbolFailure, OutcomeFailure.Symbol())
	assert.Equal(t, SymbolPlanned, OutcomePlanned.Symbol())
}

func TestIsFatal(t *testing.T) {
	cfgErr := &ConfigurationError{Path: "/themes", Err: ErrSourceNotFound, Remedy: "create it"}
	discErr := &DiscoveryError{SourceDir: "/themes", Err: ErrNoThemes}
	parseErr := &ParseError{Path: "/themes/a/colors.toml", Err: ErrInvalidPalette}

	assert.True(t, IsFatal(cfgErr))
	assert.True(t, IsFatal(fmt.Errorf("wrapped: %w", discErr)))
	assert.False(t, IsFatal(parseErr))
	assert.False(t, IsFatal(&RenderError{Path: "x", Err: errors.New("disk full")}))

	assert.True(t, errors.Is(cfgErr, ErrSourceNotFound))
	assert.True(t, errors.Is(parseErr, ErrInvalidPalette))
	assert.Equal(t, "create it", Remedy(cfgErr))
	assert.NotEmpty(t, Remedy(discErr))
	assert.Empty(t, Remedy(parseErr))
}
