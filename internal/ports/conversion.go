package ports

import (
	"context"

	"themeconv/internal/domain"
)

// PaletteParser loads a theme's palette file
type PaletteParser interface {
	// Parse reads the palette file in themeDir into a fresh Palette
	Parse(themeDir string) (domain.Palette, error)
}

// ThemeRenderer writes every target file for a theme
type ThemeRenderer interface {
	// Render writes all outputs into theme.OutputDir and returns their paths
	Render(theme domain.ThemeDescriptor, palette domain.Palette) ([]string, error)
}

// ThemeSelector lets a user pick themes interactively
type ThemeSelector interface {
	// Select returns the chosen subset of themes
	Select(ctx context.Context, themes []domain.ThemeDescriptor) ([]domain.ThemeDescriptor, error)
}
