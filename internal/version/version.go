// Package version provides build-time version information for rsx.
package version

// These variables are set at build time via ldflags, e.g.
//
//	-X github.com/open-cli-collective/rsx-cli/internal/version.Version=v0.3.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
