package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"themeconv/internal/domain"
	"themeconv/internal/logging"
	"themeconv/internal/ports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("themeconv").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl"),
)

const (
	dirMode        os.FileMode = 0755
	fileMode       os.FileMode = 0644
	executableMode os.FileMode = 0755
)

const (
	originCopied      = "copied from theme"
	originSynthesized = "generated"
)

// target is one file produced per theme
type target struct {
	build    func(*templateData) ([]byte, error)
	file     string
	mode     os.FileMode
	native   bool // a file with the same name in the theme directory is copied through
	template string
}

// targets are written in this order. README.md comes last so it can list the others.
var targets = []target{
	{file: "compositor.conf", template: "compositor.conf.tmpl", mode: fileMode},
	{file: "waybar.css", template: "waybar.css.tmpl", mode: fileMode},
	{file: "alacritty.toml", build: buildAlacritty, mode: fileMode, native: true},
	{file: "kitty.conf", template: "kitty.conf.tmpl", mode: fileMode, native: true},
	{file: "ghostty.conf", template: "ghostty.conf.tmpl", mode: fileMode, native: true},
	{file: "mako.ini", template: "mako.ini.tmpl", mode: fileMode},
	{file: "swayosd.css", template: "swayosd.css.tmpl", mode: fileMode},
	{file: "install.sh", template: "install.sh.tmpl", mode: executableMode},
	{file: "README.md", template: "README.md.tmpl", mode: fileMode},
}

// TargetFiles returns the names of the files Render produces, in order
func TargetFiles() []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.file
	}
	return names
}

// Renderer implements ports.ThemeRenderer with embedded text templates
type Renderer struct{}

// Verify interface compliance at compile time
var _ ports.ThemeRenderer = (*Renderer)(nil)

// NewRenderer creates a new Renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes every target file for theme into theme.OutputDir, overwriting
// existing files, and returns the written paths in target order
func (r *Renderer) Render(theme domain.ThemeDescriptor, palette domain.Palette) ([]string, error) {
	if err := os.MkdirAll(theme.OutputDir, dirMode); err != nil {
		return nil, &domain.RenderError{Path: theme.OutputDir, Err: fmt.Errorf("failed to create output directory: %w", err)}
	}

	natives, err := findNativeFiles(theme.SourceDir)
	if err != nil {
		return nil, &domain.RenderError{Path: theme.SourceDir, Err: err}
	}

	files := make([]fileEntry, 0, len(targets))
	for _, t := range targets {
		origin := originSynthesized
		if _, ok := natives[t.file]; ok {
			origin = originCopied
		}
		files = append(files, fileEntry{Name: t.file, Origin: origin})
	}
	data := newTemplateData(theme, palette, files)

	written := make([]string, 0, len(targets))
	for _, t := range targets {
		path := filepath.Join(theme.OutputDir, t.file)

		var content []byte
		if src, ok := natives[t.file]; ok {
			logging.Logger.Debug("Copying native file", "theme", theme.Name, "source", src)
			content, err = os.ReadFile(src)
			if err != nil {
				return written, &domain.RenderError{Path: src, Err: fmt.Errorf("failed to read native file: %w", err)}
			}
		} else {
			content, err = t.render(data)
			if err != nil {
				return written, &domain.RenderError{Path: path, Err: err}
			}
		}

		if err := writeFile(path, content, t.mode); err != nil {
			return written, &domain.RenderError{Path: path, Err: err}
		}
		written = append(written, path)
	}

	logging.Logger.Info("Theme rendered", "theme", theme.Name, "output", theme.OutputDir, "files", len(written))
	return written, nil
}

func (t target) render(data *templateData) ([]byte, error) {
	if t.build != nil {
		return t.build(data)
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, t.template, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", t.template, err)
	}
	return buf.Bytes(), nil
}

// findNativeFiles returns the copy-through candidates present in sourceDir
func findNativeFiles(sourceDir string) (map[string]string, error) {
	natives := make(map[string]string)
	if sourceDir == "" {
		return natives, nil
	}
	for _, t := range targets {
		if !t.native {
			continue
		}
		path := filepath.Join(sourceDir, t.file)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.Mode().IsRegular() {
			natives[t.file] = path
		}
	}
	return natives, nil
}

// writeFile replaces path atomically so a failed write never leaves a truncated file
func writeFile(path string, content []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, mode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Chmod(tmp, mode); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
