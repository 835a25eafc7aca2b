package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeconv/test/integration/harness"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name: "converts every theme",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.WriteTheme("ember", "colors.toml", "primary_bg = \"#101318\"\nprimary_accent = \"#E37B66\"\n")
				env.WriteTheme("frost", "colors.yaml", "primary_bg: \"#202020\"\n")
			},
			args:         []string{"convert", "--sort"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Converted 2 theme(s): 2 succeeded, 0 failed")

				compositor := env.ReadOutput("ember", "compositor.conf")
				harness.AssertConfigValue(t, compositor, "background_color", "#101318")
				harness.AssertConfigValue(t, compositor, "window_border_color_active", "#E37B66")
				harness.AssertConfigValue(t, compositor, "window_border_color_inactive", "#414868")

				harness.AssertConfigValue(t, env.ReadOutput("frost", "compositor.conf"), "background_color", "#202020")
				harness.AssertConfigValue(t, env.ReadOutput("frost", "compositor.conf"), "window_border_color_active", "#7aa2f7")
			},
		},
		{
			name:         "running with no command converts",
			setup:        func(t *testing.T, env *harness.TestEnvironment) { env.WriteTheme("solo", "colors.json", `{"primary_bg": "#000000"}`) },
			args:         []string{},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.True(t, env.OutputExists("solo/install.sh"))
			},
		},
		{
			name: "malformed theme is reported and the batch continues",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.WriteTheme("good", "colors.toml", "primary_bg = \"#111111\"\n")
				env.WriteTheme("bad", "colors.toml", "primary_bg = \"#222222\n[[[")
			},
			args:         []string{"convert"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "1 succeeded, 1 failed (bad)")
				assert.True(t, env.OutputExists("good/README.md"))
				assert.False(t, env.OutputExists("bad"))
			},
		},
		{
			name:         "dry run writes nothing",
			setup:        func(t *testing.T, env *harness.TestEnvironment) { env.WriteTheme("plan", "colors.toml", "") },
			args:         []string{"convert", "--dry-run"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Dry run: 1 theme(s) planned")
				_, err := os.Stat(env.OutputDir)
				assert.True(t, os.IsNotExist(err))
			},
		},
		{
			name: "explicit theme selection",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.WriteTheme("one", "colors.toml", "")
				env.WriteTheme("two", "colors.toml", "")
			},
			args:         []string{"convert", "--theme", "two"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.True(t, env.OutputExists("two"))
				assert.False(t, env.OutputExists("one"))
			},
		},
		{
			name: "strip decorations",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.WriteTheme("omarchy-nord-theme", "colors.toml", "")
			},
			args:         []string{"convert", "--strip-decorations"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.True(t, env.OutputExists("nord/compositor.conf"))
			},
		},
		{
			name:         "missing source directory fails with remedy",
			args:         []string{"convert", "--source", "/nonexistent/themeconv-themes"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "source directory not found")
			},
		},
		{
			name: "no themes fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				require.NoError(t, os.MkdirAll(filepath.Join(env.SourceDir, "not-a-theme"), 0755))
			},
			args:         []string{"convert"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "no themes found")
				harness.AssertStderrContains(t, result, "colors.toml")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			assert.Equal(t, tt.wantExitCode, result.ExitCode,
				"Unexpected exit code.\nStdout: %s\nStderr: %s", result.Stdout, result.Stderr)
			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteTheme("steady", "colors.toml", "primary_bg = \"#0a0a0a\"\n[ansi_normal]\nred = \"#ff0000\"\n")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "convert"))
	first := env.ReadOutput("steady", "README.md") + env.ReadOutput("steady", "alacritty.toml")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "convert"))
	second := env.ReadOutput("steady", "README.md") + env.ReadOutput("steady", "alacritty.toml")

	assert.Equal(t, first, second)
}

func TestConvertOne(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	dir := env.WriteTheme("single", "colors.toml", "primary_bg = \"#303030\"\n")

	result := harness.RunCommand(t, env, "convert-one", dir)
	harness.AssertSuccess(t, result)
	harness.AssertConfigValue(t, env.ReadOutput("single", "compositor.conf"), "background_color", "#303030")
}

func TestConvertOneParseFailure(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	dir := env.WriteTheme("broken", "colors.json", "{not json")

	result := harness.RunCommand(t, env, "convert-one", dir)
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "invalid palette file")
}
