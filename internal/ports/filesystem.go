package ports

import "themeconv/internal/domain"

// PathResolver canonicalizes filesystem paths
type PathResolver interface {
	// Resolve returns the canonical path under PolicyResolve and the input under PolicyPreserve.
	// Resolution failures fall back to the input path.
	Resolve(path string, policy domain.SymlinkPolicy) string

	// IsSymlink reports whether path itself is a symbolic link
	IsSymlink(path string) bool

	// ReadLinkTarget returns the immediate link target, for diagnostics
	ReadLinkTarget(path string) (string, error)
}

// DiscoverOptions configures one discovery scan
type DiscoverOptions struct {
	FollowDirSymlinks bool
	OutputDir         string
	Policy            domain.SymlinkPolicy
	SourceDir         string
	StripDecorations  bool
}

// ThemeDiscoverer finds theme candidates in a source directory
type ThemeDiscoverer interface {
	// Discover returns one descriptor per distinct canonical theme directory
	Discover(opts DiscoverOptions) ([]domain.ThemeDescriptor, error)
}
