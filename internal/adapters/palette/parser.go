package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"themeconv/internal/adapters/filesystem"
	"themeconv/internal/domain"
	"themeconv/internal/logging"
	"themeconv/internal/ports"
)

// Parser implements ports.PaletteParser using viper.
// TOML, YAML and JSON palette files are accepted.
type Parser struct {
	resolver ports.PathResolver
}

// Verify interface compliance at compile time
var _ ports.PaletteParser = (*Parser)(nil)

// NewParser creates a new Parser
func NewParser(resolver ports.PathResolver) *Parser {
	return &Parser{
		resolver: resolver,
	}
}

// Parse reads the palette file in themeDir into a fresh Palette.
// Top-level scalars form the base table; ansi_normal, ansi_bright and
// ansi_dim sections are optional.
func (p *Parser) Parse(themeDir string) (domain.Palette, error) {
	path, ok := filesystem.FindPaletteFile(themeDir)
	if !ok {
		return domain.Palette{}, &domain.ParseError{Path: themeDir, Err: domain.ErrPaletteNotFound}
	}

	resolved := p.resolver.Resolve(path, domain.PolicyResolve)
	logging.Logger.Debug("Parsing palette", "path", path, "resolved", resolved)

	// A fresh instance per file; the global viper must never carry colors between themes
	v := viper.New()
	v.SetConfigFile(resolved)
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))

	if err := v.ReadInConfig(); err != nil {
		logging.Logger.Error("Failed to read palette", "path", resolved, "error", err)
		return domain.Palette{}, &domain.ParseError{
			Path: resolved,
			Err:  fmt.Errorf("%w: %v", domain.ErrInvalidPalette, err),
		}
	}

	palette := domain.NewPalette()
	palette.SourcePath = resolved

	sections := make(map[string]domain.Intensity)
	for _, i := range domain.Intensities() {
		sections[i.Section()] = i
	}

	settings := v.AllSettings()
	if isYAML(path) {
		// viper hands YAML scalars over already typed, so 001122 would arrive as 594
		raw, err := readYAMLScalars(resolved)
		if err != nil {
			logging.Logger.Error("Failed to read palette", "path", resolved, "error", err)
			return domain.Palette{}, &domain.ParseError{
				Path: resolved,
				Err:  fmt.Errorf("%w: %v", domain.ErrInvalidPalette, err),
			}
		}
		settings = raw
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := settings[key]

		if raw == nil {
			logging.Logger.Debug("Palette entry is empty, default applies", "key", key)
			continue
		}

		if intensity, isSection := sections[key]; isSection {
			entries, ok := raw.(map[string]any)
			if !ok {
				return domain.Palette{}, &domain.ParseError{
					Path: resolved,
					Err:  fmt.Errorf("%w: section %s must be a mapping", domain.ErrInvalidPalette, key),
				}
			}
			flattenSection(palette.Ansi.Table(intensity), key, entries)
			continue
		}

		if _, nested := raw.(map[string]any); nested {
			logging.Logger.Debug("Ignoring nested palette section", "section", key)
			continue
		}

		value, ok := toColor(raw)
		if !ok {
			logging.Logger.Warn("Ignoring palette entry that is not a color value", "key", key, "path", resolved)
			continue
		}
		if _, known := domain.ParseColorKey(key); !known {
			logging.Logger.Debug("Keeping palette entry outside the known vocabulary", "key", key)
		}
		palette.Base.Set(key, value)
	}

	logging.Logger.Info("Palette parsed",
		"path", resolved,
		"base_entries", len(palette.Base),
		"ansi_normal", len(palette.Ansi.Normal),
		"ansi_bright", len(palette.Ansi.Bright),
		"ansi_dim", len(palette.Ansi.Dim))

	return palette, nil
}

// flattenSection copies the scalar entries of an ANSI section into table
func flattenSection(table domain.ColorTable, section string, entries map[string]any) {
	for name, raw := range entries {
		if raw == nil {
			continue
		}
		value, ok := toColor(raw)
		if !ok {
			logging.Logger.Warn("Ignoring ANSI entry that is not a color value", "section", section, "key", name)
			continue
		}
		table.Set(name, value)
	}
}

// toColor converts a scalar to a ColorValue. Nulls, blanks, lists and maps are rejected.
func toColor(raw any) (domain.ColorValue, bool) {
	if raw == nil {
		return "", false
	}
	switch raw.(type) {
	case []any, map[string]any:
		return "", false
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return domain.ColorValue(s), true
}

func isYAML(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// readYAMLScalars decodes a YAML file keeping every scalar as its source text.
// Keys are lowercased to match viper. Nulls become nil.
func readYAMLScalars(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return map[string]any{}, nil
	}

	switch root := yamlValue(doc.Content[0]).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return root, nil
	default:
		return nil, fmt.Errorf("top level must be a mapping")
	}
}

func yamlValue(n *yaml.Node) any {
	switch n.Kind {
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[strings.ToLower(n.Content[i].Value)] = yamlValue(n.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, yamlValue(c))
		}
		return items
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil
		}
		return n.Value
	}
	return nil
}
