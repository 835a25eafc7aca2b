package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"themeconv/internal/domain"
	"themeconv/internal/logging"
	"themeconv/internal/ports"
)

// ConverterService runs Discover -> Select -> {Parse -> Render} -> Summarize.
// Themes are processed one at a time and a failing theme never stops the batch.
type ConverterService struct {
	discoverer ports.ThemeDiscoverer
	parser     ports.PaletteParser
	recorder   ports.RunRecorder
	renderer   ports.ThemeRenderer
	selector   ports.ThemeSelector
}

// NewConverterService creates a new ConverterService.
// selector and recorder may be nil when interactive selection or history are unavailable.
func NewConverterService(
	discoverer ports.ThemeDiscoverer,
	parser ports.PaletteParser,
	renderer ports.ThemeRenderer,
	selector ports.ThemeSelector,
	recorder ports.RunRecorder,
) *ConverterService {
	return &ConverterService{
		discoverer: discoverer,
		parser:     parser,
		recorder:   recorder,
		renderer:   renderer,
		selector:   selector,
	}
}

// Discover returns the themes a batch with opts would consider, before selection
func (s *ConverterService) Discover(opts domain.Options) ([]domain.ThemeDescriptor, error) {
	themes, err := s.discoverer.Discover(ports.DiscoverOptions{
		FollowDirSymlinks: opts.FollowDirSymlinks,
		OutputDir:         opts.OutputDir,
		Policy:            opts.Policy,
		SourceDir:         opts.SourceDir,
		StripDecorations:  opts.StripDecorations,
	})
	if err != nil {
		return nil, err
	}
	if opts.Sort {
		sortThemes(themes)
	}
	return themes, nil
}

// Run converts every selected theme. The returned error is non-nil only for
// fatal problems (configuration, discovery, selection); per-theme failures
// are reported through the results and the summary.
func (s *ConverterService) Run(ctx context.Context, opts domain.Options) (domain.Summary, []domain.ConversionResult, error) {
	startedAt := time.Now()
	summary := domain.Summary{DryRun: opts.DryRun}

	logging.Logger.Info("Starting conversion",
		"source", opts.SourceDir,
		"output", opts.OutputDir,
		"dryRun", opts.DryRun,
		"policy", opts.Policy)

	themes, err := s.Discover(opts)
	if err != nil {
		logging.Logger.Error("Discovery failed", "source", opts.SourceDir, "error", err)
		return summary, nil, err
	}

	themes, err = s.selectThemes(ctx, themes, opts)
	if err != nil {
		return summary, nil, err
	}

	results := make([]domain.ConversionResult, 0, len(themes))
	for _, theme := range themes {
		if err := ctx.Err(); err != nil {
			logging.Logger.Warn("Conversion cancelled", "remaining", len(themes)-len(results), "error", err)
			break
		}

		var result domain.ConversionResult
		if opts.DryRun {
			result = planTheme(theme)
		} else {
			result = s.convertTheme(theme)
		}
		summary.Add(result)
		results = append(results, result)
	}

	logging.Logger.Info("Conversion finished",
		"attempted", summary.Attempted,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed)

	if !opts.DryRun && opts.Record && s.recorder != nil {
		run := newRunRecord(startedAt, opts, summary, results)
		if err := s.recorder.RecordRun(ctx, run); err != nil {
			logging.Logger.Warn("Failed to record run history", "error", err)
		}
	}

	return summary, results, nil
}

// ConvertOne converts a single theme directory into outputRoot/<name>.
// Unlike Run, a parse or render failure is returned as the error.
func (s *ConverterService) ConvertOne(ctx context.Context, dir string, outputRoot string) (domain.ConversionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ConversionResult{}, err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.ConversionResult{}, fmt.Errorf("failed to resolve theme directory: %w", err)
	}
	name := domain.SanitizeThemeName(filepath.Base(abs))
	if name == "" {
		return domain.ConversionResult{}, &domain.ConfigurationError{
			Path:   dir,
			Err:    fmt.Errorf("cannot derive a theme name"),
			Remedy: "Pass the path of a theme directory, not a filesystem root",
		}
	}

	theme := domain.ThemeDescriptor{
		CanonicalDir: abs,
		Name:         name,
		OutputDir:    filepath.Join(outputRoot, name),
		SourceDir:    abs,
	}

	result := s.convertTheme(theme)
	return result, result.Err
}

// selectThemes narrows the discovered themes by explicit names or interactive choice
func (s *ConverterService) selectThemes(ctx context.Context, themes []domain.ThemeDescriptor, opts domain.Options) ([]domain.ThemeDescriptor, error) {
	switch {
	case len(opts.Themes) > 0:
		selected := selectByName(themes, opts.Themes)
		if len(selected) == 0 {
			return nil, &domain.DiscoveryError{
				SourceDir: opts.SourceDir,
				Err:       fmt.Errorf("%w: %w: none of %v", domain.ErrNoThemes, domain.ErrThemeNotFound, opts.Themes),
			}
		}
		return selected, nil

	case opts.Interactive:
		if s.selector == nil {
			return nil, &domain.ConfigurationError{
				Err:    errors.New("interactive selection is not available"),
				Remedy: "Run from a terminal or pass --theme",
			}
		}
		selected, err := s.selector.Select(ctx, themes)
		if err != nil {
			return nil, fmt.Errorf("failed to select themes: %w", err)
		}
		if len(selected) == 0 {
			return nil, &domain.DiscoveryError{SourceDir: opts.SourceDir, Err: domain.ErrNoThemes}
		}
		return selected, nil

	default:
		return themes, nil
	}
}

// convertTheme parses and renders one theme. The palette is created inside
// the parser call and never outlives this function.
func (s *ConverterService) convertTheme(theme domain.ThemeDescriptor) domain.ConversionResult {
	result := domain.ConversionResult{
		Outcome:   domain.OutcomeFailure,
		Source:    theme.SourceDir,
		Target:    theme.OutputDir,
		ThemeName: theme.Name,
	}

	palette, err := s.parser.Parse(theme.SourceDir)
	if err != nil {
		logging.Logger.Error("Failed to parse theme", "theme", theme.Name, "error", err)
		result.Err = err
		return result
	}

	files, err := s.renderer.Render(theme, palette)
	if err != nil {
		logging.Logger.Error("Failed to render theme", "theme", theme.Name, "error", err)
		result.Err = err
		result.Files = files
		return result
	}

	result.Files = files
	result.Outcome = domain.OutcomeSuccess
	logging.Logger.Info("Theme converted", "theme", theme.Name, "files", len(files))
	return result
}

func planTheme(theme domain.ThemeDescriptor) domain.ConversionResult {
	logging.Logger.Debug("Planned theme", "theme", theme.Name, "source", theme.SourceDir, "target", theme.OutputDir)
	return domain.ConversionResult{
		Outcome:   domain.OutcomePlanned,
		Source:    theme.SourceDir,
		Target:    theme.OutputDir,
		ThemeName: theme.Name,
	}
}

// selectByName keeps the requested themes in discovery order.
// Unknown names are logged and dropped.
func selectByName(themes []domain.ThemeDescriptor, names []string) []domain.ThemeDescriptor {
	byName := make(map[string]bool, len(names))
	for _, n := range names {
		byName[n] = true
	}

	var selected []domain.ThemeDescriptor
	found := make(map[string]bool)
	for _, t := range themes {
		if byName[t.Name] {
			selected = append(selected, t)
			found[t.Name] = true
		}
	}
	for _, n := range names {
		if !found[n] {
			logging.Logger.Warn("Requested theme not found", "theme", n)
		}
	}
	return selected
}

func sortThemes(themes []domain.ThemeDescriptor) {
	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Name < themes[j].Name
	})
}

func newRunRecord(startedAt time.Time, opts domain.Options, summary domain.Summary, results []domain.ConversionResult) domain.RunRecord {
	themes := make([]domain.RunThemeRecord, len(results))
	for i, r := range results {
		var msg string
		if r.Err != nil {
			msg = r.Err.Error()
		}
		themes[i] = domain.RunThemeRecord{
			Error:     msg,
			FileCount: len(r.Files),
			Outcome:   r.Outcome,
			ThemeName: r.ThemeName,
		}
	}
	return domain.RunRecord{
		Attempted: summary.Attempted,
		Failed:    summary.Failed,
		ID:        uuid.New().String(),
		OutputDir: opts.OutputDir,
		SourceDir: opts.SourceDir,
		StartedAt: startedAt,
		Succeeded: summary.Succeeded,
		Themes:    themes,
	}
}
