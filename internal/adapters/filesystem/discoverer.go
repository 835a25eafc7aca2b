package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"themeconv/internal/domain"
	"themeconv/internal/logging"
	"themeconv/internal/ports"
)

// Discoverer implements ports.ThemeDiscoverer
type Discoverer struct {
	resolver ports.PathResolver
}

// Verify interface compliance at compile time
var _ ports.ThemeDiscoverer = (*Discoverer)(nil)

// NewDiscoverer creates a new Discoverer
func NewDiscoverer(resolver ports.PathResolver) *Discoverer {
	return &Discoverer{
		resolver: resolver,
	}
}

// Discover scans the immediate children of opts.SourceDir for theme directories.
// Results follow directory read order, which is not guaranteed across platforms;
// callers that need a stable order must sort.
func (d *Discoverer) Discover(opts ports.DiscoverOptions) ([]domain.ThemeDescriptor, error) {
	logging.Logger.Info("Discovering themes",
		"source_dir", opts.SourceDir,
		"follow_dir_symlinks", opts.FollowDirSymlinks,
		"policy", opts.Policy)

	info, err := os.Stat(opts.SourceDir)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("not a directory")
		}
		logging.Logger.Error("Source directory unavailable", "source_dir", opts.SourceDir, "error", err)
		return nil, &domain.ConfigurationError{
			Path:   opts.SourceDir,
			Err:    fmt.Errorf("%w: %v", domain.ErrSourceNotFound, err),
			Remedy: "Pass an existing theme directory with --source or set source_dir in settings.yaml",
		}
	}

	entries, err := os.ReadDir(opts.SourceDir)
	if err != nil {
		return nil, &domain.ConfigurationError{
			Path:   opts.SourceDir,
			Err:    fmt.Errorf("failed to read source directory: %w", err),
			Remedy: "Check the directory permissions",
		}
	}

	seen := make(map[string]string)
	taken := make(map[string]string)
	var themes []domain.ThemeDescriptor

	for _, entry := range entries {
		childPath := filepath.Join(opts.SourceDir, entry.Name())

		if d.resolver.IsSymlink(childPath) {
			if !opts.FollowDirSymlinks {
				logging.Logger.Debug("Skipping symlinked entry", "path", childPath)
				continue
			}
			if target, err := d.resolver.ReadLinkTarget(childPath); err == nil {
				logging.Logger.Debug("Following symlinked entry", "path", childPath, "target", target)
			}
		}

		// Stat follows links, so symlinked directories qualify here
		childInfo, err := os.Stat(childPath)
		if err != nil || !childInfo.IsDir() {
			continue
		}

		if _, ok := FindPaletteFile(childPath); !ok {
			logging.Logger.Debug("Skipping directory without palette file", "path", childPath)
			continue
		}

		canonical := d.resolver.Resolve(childPath, domain.PolicyResolve)
		if first, dup := seen[canonical]; dup {
			logging.Logger.Warn("Skipping duplicate theme directory",
				"path", childPath,
				"canonical", canonical,
				"first_seen", first)
			continue
		}
		seen[canonical] = childPath

		name, clashedWith := themeName(entry.Name(), opts.StripDecorations, taken)
		if name == "" {
			logging.Logger.Warn("Skipping theme with unusable name", "path", childPath)
			continue
		}
		if clashedWith != "" {
			logging.Logger.Warn("Theme name already in use, output renamed",
				"path", childPath,
				"name", name,
				"first_seen", clashedWith)
		}
		taken[outputKey(name)] = childPath

		themes = append(themes, domain.ThemeDescriptor{
			CanonicalDir: canonical,
			Name:         name,
			OutputDir:    filepath.Join(opts.OutputDir, name),
			SourceDir:    d.resolver.Resolve(childPath, opts.Policy),
		})
	}

	if len(themes) == 0 {
		logging.Logger.Error("No themes discovered", "source_dir", opts.SourceDir)
		return nil, &domain.DiscoveryError{SourceDir: opts.SourceDir, Err: domain.ErrNoThemes}
	}

	logging.Logger.Info("Themes discovered", "count", len(themes))
	return themes, nil
}

// themeName derives a unique output name for dirName. When the preferred
// name is already taken the full sanitized name is tried, then numeric
// suffixes; clashedWith is the directory that holds the preferred name.
// name is "" when dirName has no usable characters.
func themeName(dirName string, strip bool, taken map[string]string) (name, clashedWith string) {
	full := domain.SanitizeThemeName(dirName)
	if full == "" {
		return "", ""
	}

	candidates := []string{full}
	if strip {
		if stripped := domain.SanitizeThemeName(domain.StripThemeDecorations(dirName)); stripped != "" {
			candidates = []string{stripped, full}
		}
	}

	clashedWith, clash := taken[outputKey(candidates[0])]
	if !clash {
		return candidates[0], ""
	}
	for _, c := range candidates[1:] {
		if _, ok := taken[outputKey(c)]; !ok {
			return c, clashedWith
		}
	}
	for n := 2; ; n++ {
		c := candidates[0] + "-" + strconv.Itoa(n)
		if _, ok := taken[outputKey(c)]; !ok {
			return c, clashedWith
		}
	}
}

// outputKey folds case so names differing only in case never share a
// directory on case-insensitive filesystems
func outputKey(name string) string {
	return strings.ToLower(name)
}
