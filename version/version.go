package version

import "fmt"

// Tagline is the application's tagline used in help text and documentation
const Tagline = "Convert desktop theme palettes into ready-to-install config files"

// Build information injected at build time via ldflags
// Example: -ldflags="-X themeconv/version.Version=v1.0.0 -X themeconv/version.Commit=abc123"
var (
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
	Version   = "dev"     // Semantic version or "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("themeconv %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
