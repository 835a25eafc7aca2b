package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment is an isolated home, config home, theme source and output root
type TestEnvironment struct {
	ConfigHome string
	Home       string
	OutputDir  string
	SourceDir  string
	WorkDir    string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates the directory layout under a single temp directory.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	env := &TestEnvironment{
		ConfigHome: filepath.Join(root, "config"),
		Home:       filepath.Join(root, "home"),
		OutputDir:  filepath.Join(root, "out"),
		SourceDir:  filepath.Join(root, "themes"),
		WorkDir:    filepath.Join(root, "work"),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
	for _, dir := range []string{env.ConfigHome, env.Home, env.SourceDir, env.WorkDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return env
}

// Environ returns environment variables configured for test isolation.
// THEMECONV_* variables from the parent are dropped, and THEMECONV_HOME,
// XDG_CONFIG_HOME and the source/output directories point into the temp tree.
func (e *TestEnvironment) Environ() []string {
	isolated := map[string]string{
		"ACCESSIBLE":           "1",
		"THEMECONV_HOME":       e.Home,
		"THEMECONV_OUTPUT_DIR": e.OutputDir,
		"THEMECONV_SOURCE_DIR": e.SourceDir,
		"XDG_CONFIG_HOME":      e.ConfigHome,
	}
	for k, v := range e.extraEnv {
		isolated[k] = v
	}

	env := make([]string, 0, len(os.Environ())+len(isolated))
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "THEMECONV_") {
			continue
		}
		if _, overridden := isolated[key]; overridden {
			continue
		}
		env = append(env, kv)
	}
	for k, v := range isolated {
		env = append(env, k+"="+v)
	}
	return env
}

// DBPath returns the path to the history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "history.db")
}

// SettingsPath returns the path to the settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.yaml")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// WriteTheme creates SourceDir/name/file with content and returns the theme directory.
func (e *TestEnvironment) WriteTheme(name, file, content string) string {
	e.tb.Helper()
	dir := filepath.Join(e.SourceDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.tb.Fatalf("Failed to create theme %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s/%s: %v", name, file, err)
	}
	return dir
}

// ReadOutput returns the content of OutputDir/theme/file.
func (e *TestEnvironment) ReadOutput(theme, file string) string {
	e.tb.Helper()
	data, err := os.ReadFile(filepath.Join(e.OutputDir, theme, file))
	if err != nil {
		e.tb.Fatalf("Failed to read output %s/%s: %v", theme, file, err)
	}
	return string(data)
}

// OutputExists reports whether OutputDir/rel exists.
func (e *TestEnvironment) OutputExists(rel string) bool {
	_, err := os.Stat(filepath.Join(e.OutputDir, rel))
	return err == nil
}
