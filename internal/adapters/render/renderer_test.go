package render

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeconv/internal/domain"
)

func newTheme(t *testing.T, name string) domain.ThemeDescriptor {
	t.Helper()
	src := filepath.Join(t.TempDir(), "src", name)
	require.NoError(t, os.MkdirAll(src, 0755))
	return domain.ThemeDescriptor{
		CanonicalDir: src,
		Name:         name,
		OutputDir:    filepath.Join(t.TempDir(), "out", name),
		SourceDir:    src,
	}
}

func readOutput(t *testing.T, theme domain.ThemeDescriptor, file string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(theme.OutputDir, file))
	require.NoError(t, err)
	return string(data)
}

// keyValues parses "key value" lines, skipping comments and blanks
func keyValues(t *testing.T, content string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 2 {
			out[fields[0]] = fields[1]
		}
	}
	return out
}

// fullPalette assigns a distinct non-default value to every key and ANSI color
func fullPalette() domain.Palette {
	p := domain.NewPalette()
	for i, k := range domain.ColorKeys() {
		p.Base.Set(string(k), domain.ColorValue(fmt.Sprintf("#a000%02d", i)))
	}
	for n, intensity := range domain.Intensities() {
		for i, c := range domain.AnsiColors() {
			p.Ansi.Table(intensity).Set(string(c), domain.ColorValue(fmt.Sprintf("#b0%02d%02d", n, i)))
		}
	}
	return p
}

func allDefaults() []string {
	var values []string
	for _, k := range domain.ColorKeys() {
		values = append(values, string(k.Default()))
	}
	for _, i := range domain.Intensities() {
		for _, c := range domain.AnsiColors() {
			values = append(values, string(domain.AnsiDefault(i, c)))
		}
	}
	return values
}

func TestRenderWritesAllTargets(t *testing.T) {
	theme := newTheme(t, "nord")
	r := NewRenderer()

	files, err := r.Render(theme, domain.NewPalette())
	require.NoError(t, err)

	require.Len(t, files, len(TargetFiles()))
	for i, name := range TargetFiles() {
		assert.Equal(t, filepath.Join(theme.OutputDir, name), files[i])

		info, err := os.Stat(files[i])
		require.NoError(t, err)
		if name == "install.sh" {
			assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
		} else {
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
		}

		_, err = os.Stat(files[i] + ".tmp")
		assert.True(t, os.IsNotExist(err), "temporary file left behind for %s", name)
	}
}

func TestRenderCompositorExample(t *testing.T) {
	theme := newTheme(t, "ember")
	p := domain.NewPalette()
	p.Base.Set("primary_bg", "#101318")
	p.Base.Set("primary_accent", "#E37B66")

	_, err := NewRenderer().Render(theme, p)
	require.NoError(t, err)

	kv := keyValues(t, readOutput(t, theme, "compositor.conf"))
	assert.Equal(t, "#101318", kv["background_color"])
	assert.Equal(t, "#E37B66", kv["window_border_color_active"])
	assert.Equal(t, "#414868", kv["window_border_color_inactive"])
	assert.Equal(t, "#f7768e", kv["urgent_color"])
	assert.Equal(t, "#c0caf5", kv["text_color"])
	assert.Equal(t, "#33467c", kv["selection_color"])
	assert.Equal(t, "#24283b", kv["shadow_color"])
}

func TestRenderCompletePaletteUsesNoDefaults(t *testing.T) {
	theme := newTheme(t, "complete")
	p := fullPalette()

	_, err := NewRenderer().Render(theme, p)
	require.NoError(t, err)

	for _, file := range TargetFiles() {
		content := readOutput(t, theme, file)
		for _, def := range allDefaults() {
			assert.NotContains(t, content, def, "%s contains default %s", file, def)
		}
	}

	kv := keyValues(t, readOutput(t, theme, "kitty.conf"))
	assert.Equal(t, string(p.Base["primary_bg"]), kv["background"])
	assert.Equal(t, string(p.Ansi.Normal["black"]), kv["color0"])
	assert.Equal(t, string(p.Ansi.Bright["white"]), kv["color15"])
}

func TestRenderMissingKeyUsesDefault(t *testing.T) {
	theme := newTheme(t, "partial")
	p := domain.NewPalette()
	p.Base.Set("primary_bg", "#000001")

	_, err := NewRenderer().Render(theme, p)
	require.NoError(t, err)

	waybar := readOutput(t, theme, "waybar.css")
	assert.Contains(t, waybar, "@define-color background #000001;")
	assert.Contains(t, waybar, "@define-color accent #7aa2f7;")

	readme := readOutput(t, theme, "README.md")
	assert.Contains(t, readme, "| `primary_bg` | `#000001` | theme |")
	assert.Contains(t, readme, "| `primary_accent` | `#7aa2f7` | default |")
}

func TestRenderAnsiNormalOnly(t *testing.T) {
	theme := newTheme(t, "normal-only")
	p := domain.NewPalette()
	p.Ansi.Normal.Set("red", "#ff0000")

	_, err := NewRenderer().Render(theme, p)
	require.NoError(t, err)

	var cfg alacrittyConfig
	require.NoError(t, toml.Unmarshal([]byte(readOutput(t, theme, "alacritty.toml")), &cfg))
	assert.Equal(t, domain.ColorValue("#ff0000"), cfg.Colors.Normal.Red)
	assert.Equal(t, domain.AnsiDefault(domain.IntensityNormal, domain.AnsiGreen), cfg.Colors.Normal.Green)
	assert.Equal(t, domain.AnsiDefault(domain.IntensityBright, domain.AnsiRed), cfg.Colors.Bright.Red)
	assert.Equal(t, domain.AnsiDefault(domain.IntensityDim, domain.AnsiRed), cfg.Colors.Dim.Red)
	assert.Equal(t, domain.KeyPrimaryBg.Default(), cfg.Colors.Primary.Background)

	ghostty := readOutput(t, theme, "ghostty.conf")
	assert.Contains(t, ghostty, "palette = 1=#ff0000\n")
	assert.Contains(t, ghostty, "palette = 9="+string(domain.AnsiDefault(domain.IntensityBright, domain.AnsiRed))+"\n")
}

func TestRenderMakoSections(t *testing.T) {
	theme := newTheme(t, "mako")
	p := domain.NewPalette()
	p.Base.Set("error", "#e00000")
	p.Base.Set("warning", "#ee0000")
	p.Base.Set("text_dim", "#555555")

	_, err := NewRenderer().Render(theme, p)
	require.NoError(t, err)

	mako := readOutput(t, theme, "mako.ini")
	low := mako[strings.Index(mako, "[urgency=low]"):strings.Index(mako, "[urgency=high]")]
	high := mako[strings.Index(mako, "[urgency=high]"):strings.Index(mako, "[urgency=critical]")]
	critical := mako[strings.Index(mako, "[urgency=critical]"):]

	assert.Contains(t, low, "border-color=#555555")
	assert.Contains(t, low, "background-color=#24283b")
	assert.Contains(t, high, "border-color=#ee0000")
	assert.Contains(t, critical, "border-color=#e00000")
	assert.Contains(t, critical, "text-color=#e00000")
	assert.Contains(t, critical, "background-color=#1a1b26")
}

func TestRenderIsIdempotent(t *testing.T) {
	theme := newTheme(t, "repeat")
	p := fullPalette()
	p.Base.Set("custom_key", "#123456")
	r := NewRenderer()

	_, err := r.Render(theme, p)
	require.NoError(t, err)
	first := make(map[string]string)
	for _, file := range TargetFiles() {
		first[file] = readOutput(t, theme, file)
	}

	_, err = r.Render(theme, p)
	require.NoError(t, err)
	for _, file := range TargetFiles() {
		assert.Equal(t, first[file], readOutput(t, theme, file), file)
	}
}

func TestRenderOverwritesExistingFiles(t *testing.T) {
	theme := newTheme(t, "rerun")
	require.NoError(t, os.MkdirAll(theme.OutputDir, 0755))
	old := "leftover from a previous run\n"
	require.NoError(t, os.WriteFile(filepath.Join(theme.OutputDir, "compositor.conf"), []byte(old), 0644))

	_, err := NewRenderer().Render(theme, domain.NewPalette())
	require.NoError(t, err)

	got := readOutput(t, theme, "compositor.conf")
	assert.NotEqual(t, old, got)
	assert.NotContains(t, got, "leftover")
	assert.Contains(t, got, "background_color #1a1b26")
}

func TestRenderCopiesNativeTerminalFiles(t *testing.T) {
	theme := newTheme(t, "native")
	native := "# hand-tuned\nforeground #010203\n"
	require.NoError(t, os.WriteFile(filepath.Join(theme.SourceDir, "kitty.conf"), []byte(native), 0644))

	_, err := NewRenderer().Render(theme, domain.NewPalette())
	require.NoError(t, err)

	assert.Equal(t, native, readOutput(t, theme, "kitty.conf"))
	assert.Contains(t, readOutput(t, theme, "alacritty.toml"), "[colors.primary]")

	readme := readOutput(t, theme, "README.md")
	assert.Contains(t, readme, "- `kitty.conf` (copied from theme)")
	assert.Contains(t, readme, "- `alacritty.toml` (generated)")
}

func TestRenderExtraKeysListedInReadme(t *testing.T) {
	theme := newTheme(t, "extra")
	p := domain.NewPalette()
	p.Base.Set("border_glow", "#0f0f0f")

	_, err := NewRenderer().Render(theme, p)
	require.NoError(t, err)

	assert.Contains(t, readOutput(t, theme, "README.md"), "| `border_glow` | `#0f0f0f` |")
	assert.NotContains(t, readOutput(t, theme, "compositor.conf"), "#0f0f0f")
}

func TestRenderInstallScript(t *testing.T) {
	theme := newTheme(t, "tokyo-night")

	_, err := NewRenderer().Render(theme, domain.NewPalette())
	require.NoError(t, err)

	script := readOutput(t, theme, "install.sh")
	assert.True(t, strings.HasPrefix(script, "#!/usr/bin/env bash\n"))
	assert.Contains(t, script, "THEME_NAME='tokyo-night'")
	assert.Contains(t, script, `${XDG_CONFIG_HOME:-$HOME/.config}`)
	assert.Contains(t, script, "date +%Y%m%d%H%M%S")
	assert.Contains(t, script, `ln -sfn "$TARGET_DIR" "$CURRENT_LINK"`)
	assert.Contains(t, script, `link_config mako.ini "$CONFIG_HOME/mako/config"`)
}

func TestRenderOutputDirFailure(t *testing.T) {
	theme := newTheme(t, "blocked")
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	theme.OutputDir = filepath.Join(blocker, "blocked")

	_, err := NewRenderer().Render(theme, domain.NewPalette())
	require.Error(t, err)

	var renderErr *domain.RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, theme.OutputDir, renderErr.Path)
	assert.False(t, domain.IsFatal(err))
}

func TestTemplateDataRejectsUnknownKeys(t *testing.T) {
	data := newTemplateData(domain.ThemeDescriptor{Name: "x"}, domain.NewPalette(), nil)

	_, err := data.Color("not_a_key")
	assert.Error(t, err)

	_, err = data.Ansi("loud", "red")
	assert.Error(t, err)

	_, err = data.Ansi("normal", "orange")
	assert.Error(t, err)

	v, err := data.Ansi("dim", "blue")
	require.NoError(t, err)
	assert.Equal(t, domain.AnsiDefault(domain.IntensityDim, domain.AnsiBlue), v)
}

func TestQuotedName(t *testing.T) {
	data := newTemplateData(domain.ThemeDescriptor{Name: "it's"}, domain.NewPalette(), nil)
	assert.Equal(t, `'it'\''s'`, data.QuotedName())
}
