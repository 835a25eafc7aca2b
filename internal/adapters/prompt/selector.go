package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"themeconv/internal/domain"
	"themeconv/internal/logging"
	"themeconv/internal/ports"
)

// ErrSelectionAborted is returned when the user cancels the form
var ErrSelectionAborted = errors.New("theme selection aborted")

// HuhSelector implements ports.ThemeSelector with a huh multi-select form
type HuhSelector struct {
	accessible bool
}

// Verify interface compliance at compile time
var _ ports.ThemeSelector = (*HuhSelector)(nil)

// NewHuhSelector creates a new HuhSelector.
// Accessible mode replaces the TUI with plain prompts for screen readers and dumb terminals.
func NewHuhSelector(accessible bool) *HuhSelector {
	return &HuhSelector{accessible: accessible}
}

// Select shows every discovered theme, all preselected, and returns the chosen ones in discovery order
func (s *HuhSelector) Select(ctx context.Context, themes []domain.ThemeDescriptor) ([]domain.ThemeDescriptor, error) {
	if len(themes) == 0 {
		return nil, nil
	}

	chosen := make([]string, 0, len(themes))
	options := themeOptions(themes)
	for _, t := range themes {
		chosen = append(chosen, t.Name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Themes to convert").
				Description("Space toggles a theme, enter confirms").
				Options(options...).
				Value(&chosen).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return fmt.Errorf("select at least one theme")
					}
					return nil
				}),
		),
	).WithAccessible(s.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrSelectionAborted
		}
		return nil, fmt.Errorf("failed to run theme selection: %w", err)
	}

	selected := filterByName(themes, chosen)
	logging.Logger.Info("Themes selected", "selected", len(selected), "available", len(themes))
	return selected, nil
}

func themeOptions(themes []domain.ThemeDescriptor) []huh.Option[string] {
	options := make([]huh.Option[string], len(themes))
	for i, t := range themes {
		options[i] = huh.NewOption(fmt.Sprintf("%s  (%s)", t.Name, t.SourceDir), t.Name).Selected(true)
	}
	return options
}

// filterByName keeps themes whose name is in names, in the order of themes
func filterByName(themes []domain.ThemeDescriptor, names []string) []domain.ThemeDescriptor {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []domain.ThemeDescriptor
	for _, t := range themes {
		if wanted[t.Name] {
			out = append(out, t)
		}
	}
	return out
}
