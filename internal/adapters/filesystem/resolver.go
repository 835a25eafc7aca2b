package filesystem

import (
	"os"
	"path/filepath"

	"themeconv/internal/domain"
	"themeconv/internal/logging"
	"themeconv/internal/ports"
)

// Resolver implements ports.PathResolver on the local filesystem
type Resolver struct{}

// Verify interface compliance at compile time
var _ ports.PathResolver = (*Resolver)(nil)

// NewResolver creates a new Resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the canonical path when policy is PolicyResolve.
// Broken links and permission errors fall back to the original path.
func (r *Resolver) Resolve(path string, policy domain.SymlinkPolicy) string {
	if policy == domain.PolicyPreserve {
		return path
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		logging.Logger.Warn("Failed to resolve symlinks, using original path",
			"path", path,
			"error", err)
		return path
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		logging.Logger.Warn("Failed to make path absolute, using original path",
			"path", resolved,
			"error", err)
		return path
	}

	if abs != path {
		logging.Logger.Debug("Path resolved", "original", path, "resolved", abs)
	}
	return abs
}

// IsSymlink reports whether path itself is a symbolic link
func (r *Resolver) IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// ReadLinkTarget returns the immediate target of a symbolic link
func (r *Resolver) ReadLinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

// FindPaletteFile returns the first palette file present directly in dir
func FindPaletteFile(dir string) (string, bool) {
	for _, name := range domain.PaletteFileNames {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
