// Package version provides version metadata for the application.
package version

import (
	"fmt"
	"runtime"
)

// These variables are typically injected at build time using -ldflags
var (
	// Version holds the current version of missingjobs.
	Version = "dev"
	// Commit holds the commit missingjobs was built from.
	Commit = "none"
	// BuildDate holds the build date of missingjobs.
	BuildDate = "unknown"
)

// Info returns a formatted version string.
func Info() string {
	return fmt.Sprintf("%s (commit: %s, date: %s, %s)", Version, Commit, BuildDate, runtime.Version())
}
