// Package version holds build information injected at link time.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/AllaVinner/dotman/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/AllaVinner/dotman/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/AllaVinner/dotman/internal/version.Date={{.Date}}
)

// String is the multi-line description printed by the version command
func String() string {
	return fmt.Sprintf("dotman version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
