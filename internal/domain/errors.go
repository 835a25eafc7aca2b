package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPalette  = errors.New("invalid palette file")
	ErrNoThemes        = errors.New("no themes found")
	ErrPaletteNotFound = errors.New("palette file not found")
	ErrSourceNotFound  = errors.New("source directory not found")
	ErrThemeNotFound   = errors.New("theme not found")
)

// ConfigurationError aborts a run before any theme is processed
type ConfigurationError struct {
	Err    error
	Path   string
	Remedy string
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// DiscoveryError means no usable theme was found
type DiscoveryError struct {
	Err       error
	SourceDir string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery in %s: %v", e.SourceDir, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// ParseError means one theme's palette could not be loaded
type ParseError struct {
	Err  error
	Path string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RenderError means an output file for one theme could not be produced
type RenderError struct {
	Err  error
	Path string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// IsFatal reports whether err should abort the whole batch
func IsFatal(err error) bool {
	var cfgErr *ConfigurationError
	var discErr *DiscoveryError
	return errors.As(err, &cfgErr) || errors.As(err, &discErr)
}

// Remedy returns a suggested fix for err, or "" when none is known
func Remedy(err error) string {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Remedy
	}
	var discErr *DiscoveryError
	if errors.As(err, &discErr) {
		return "Each theme needs its own directory containing colors.toml, colors.yaml or colors.json"
	}
	return ""
}
