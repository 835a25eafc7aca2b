package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeconv/internal/domain"
	"themeconv/internal/ports"
)

// writeTheme creates dir/name with a palette file and returns its path
func writeTheme(t *testing.T, dir, name, paletteFile string) string {
	t.Helper()
	themeDir := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(themeDir, 0755))
	if paletteFile != "" {
		require.NoError(t, os.WriteFile(filepath.Join(themeDir, paletteFile), []byte(`primary_bg = "#101318"`), 0644))
	}
	return themeDir
}

func discoverOpts(source string) ports.DiscoverOptions {
	return ports.DiscoverOptions{
		FollowDirSymlinks: true,
		OutputDir:         "/out",
		Policy:            domain.PolicyResolve,
		SourceDir:         source,
	}
}

func TestResolver_PreserveReturnsInput(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "relative/path", r.Resolve("relative/path", domain.PolicyPreserve))
}

func TestResolver_ResolvesSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.Symlink(target, link))

	r := NewResolver()
	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)

	assert.Equal(t, want, r.Resolve(link, domain.PolicyResolve))
	assert.True(t, r.IsSymlink(link))
	assert.False(t, r.IsSymlink(target))

	linkTarget, err := r.ReadLinkTarget(link)
	require.NoError(t, err)
	assert.Equal(t, target, linkTarget)
}

func TestResolver_BrokenLinkFallsBack(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "broken")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), link))

	r := NewResolver()

	assert.Equal(t, link, r.Resolve(link, domain.PolicyResolve))
}

func TestFindPaletteFile_Order(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colors.yaml"), []byte("a: b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colors.toml"), []byte(`a = "b"`), 0644))

	path, ok := FindPaletteFile(dir)

	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "colors.toml"), path)

	_, ok = FindPaletteFile(t.TempDir())
	assert.False(t, ok)
}

func TestDiscover_MissingSourceDir(t *testing.T) {
	d := NewDiscoverer(NewResolver())

	_, err := d.Discover(discoverOpts(filepath.Join(t.TempDir(), "nope")))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceNotFound))
	var cfgErr *domain.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.NotEmpty(t, cfgErr.Remedy)
}

func TestDiscover_NoCandidates(t *testing.T) {
	source := t.TempDir()
	writeTheme(t, source, "empty", "")
	require.NoError(t, os.WriteFile(filepath.Join(source, "colors.toml"), []byte(""), 0644))

	d := NewDiscoverer(NewResolver())
	_, err := d.Discover(discoverOpts(source))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoThemes))
	var discErr *domain.DiscoveryError
	assert.True(t, errors.As(err, &discErr))
}

func TestDiscover_FindsQualifyingChildrenOnly(t *testing.T) {
	source := t.TempDir()
	writeTheme(t, source, "nord", "colors.toml")
	writeTheme(t, source, "gruvbox", "colors.yaml")
	writeTheme(t, source, "no-palette", "")
	// Palette files nested deeper do not qualify
	writeTheme(t, filepath.Join(source, "outer"), "inner", "colors.toml")

	d := NewDiscoverer(NewResolver())
	themes, err := d.Discover(discoverOpts(source))

	require.NoError(t, err)
	names := make([]string, 0, len(themes))
	for _, th := range themes {
		names = append(names, th.Name)
		assert.Equal(t, filepath.Join("/out", th.Name), th.OutputDir)
	}
	assert.ElementsMatch(t, []string{"nord", "gruvbox"}, names)
}

func TestDiscover_DeduplicatesSymlinkAliases(t *testing.T) {
	source := t.TempDir()
	nordDir := writeTheme(t, source, "nord", "colors.toml")
	require.NoError(t, os.Symlink(nordDir, filepath.Join(source, "nord-alias")))
	require.NoError(t, os.Symlink(nordDir, filepath.Join(source, "zz-another-alias")))

	d := NewDiscoverer(NewResolver())
	themes, err := d.Discover(discoverOpts(source))

	require.NoError(t, err)
	require.Len(t, themes, 1)

	seen := make(map[string]bool)
	for _, th := range themes {
		assert.False(t, seen[th.CanonicalDir], "duplicate canonical path %s", th.CanonicalDir)
		seen[th.CanonicalDir] = true
	}
}

func TestDiscover_SymlinkedThemeOutsideSource(t *testing.T) {
	source := t.TempDir()
	elsewhere := writeTheme(t, t.TempDir(), "external", "colors.json")
	link := filepath.Join(source, "external")
	require.NoError(t, os.Symlink(elsewhere, link))

	d := NewDiscoverer(NewResolver())

	t.Run("followed", func(t *testing.T) {
		themes, err := d.Discover(discoverOpts(source))
		require.NoError(t, err)
		require.Len(t, themes, 1)
		want, err := filepath.EvalSymlinks(elsewhere)
		require.NoError(t, err)
		assert.Equal(t, want, themes[0].CanonicalDir)
		assert.Equal(t, want, themes[0].SourceDir)
	})

	t.Run("preserve policy keeps link path", func(t *testing.T) {
		opts := discoverOpts(source)
		opts.Policy = domain.PolicyPreserve
		themes, err := d.Discover(opts)
		require.NoError(t, err)
		require.Len(t, themes, 1)
		assert.Equal(t, link, themes[0].SourceDir)
	})

	t.Run("not followed", func(t *testing.T) {
		opts := discoverOpts(source)
		opts.FollowDirSymlinks = false
		_, err := d.Discover(opts)
		assert.True(t, errors.Is(err, domain.ErrNoThemes))
	})
}

func TestDiscover_StripDecorations(t *testing.T) {
	source := t.TempDir()
	writeTheme(t, source, "omarchy-tokyo-night", "colors.toml")

	d := NewDiscoverer(NewResolver())

	opts := discoverOpts(source)
	themes, err := d.Discover(opts)
	require.NoError(t, err)
	assert.Equal(t, "omarchy-tokyo-night", themes[0].Name)

	opts.StripDecorations = true
	themes, err = d.Discover(opts)
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", themes[0].Name)
}

// namesByDir maps each discovered theme's directory name to its output name
func namesByDir(themes []domain.ThemeDescriptor) map[string]string {
	names := make(map[string]string, len(themes))
	for _, th := range themes {
		names[filepath.Base(th.SourceDir)] = th.Name
	}
	return names
}

func TestDiscover_OutputNamesAreUnique(t *testing.T) {
	tests := []struct {
		name  string
		dirs  []string
		strip bool
		want  map[string]string
	}{
		{
			name: "sanitized names collide",
			dirs: []string{"my theme", "my-theme"},
			want: map[string]string{"my theme": "my-theme", "my-theme": "my-theme-2"},
		},
		{
			name:  "stripped name collides with plain theme",
			dirs:  []string{"nord", "omarchy-nord"},
			strip: true,
			want:  map[string]string{"nord": "nord", "omarchy-nord": "omarchy-nord"},
		},
		{
			name:  "stripped and full names both taken",
			dirs:  []string{"nord", "omarchy nord", "omarchy-nord"},
			strip: true,
			want: map[string]string{
				"nord":         "nord",
				"omarchy nord": "omarchy-nord",
				"omarchy-nord": "nord-2",
			},
		},
		{
			name: "names differing only in case",
			dirs: []string{"Nord", "nord"},
			want: map[string]string{"Nord": "Nord", "nord": "nord-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := t.TempDir()
			for _, dir := range tt.dirs {
				writeTheme(t, source, dir, "colors.toml")
			}
			entries, err := os.ReadDir(source)
			require.NoError(t, err)
			if len(entries) < len(tt.dirs) {
				t.Skip("filesystem folds case")
			}

			opts := discoverOpts(source)
			opts.StripDecorations = tt.strip
			themes, err := NewDiscoverer(NewResolver()).Discover(opts)
			require.NoError(t, err)
			require.Len(t, themes, len(tt.dirs))

			assert.Equal(t, tt.want, namesByDir(themes))

			outputs := make(map[string]bool)
			for _, th := range themes {
				assert.False(t, outputs[th.OutputDir], "output dir %s assigned twice", th.OutputDir)
				outputs[th.OutputDir] = true
			}
		})
	}
}
