// Package version reports the build version of lwc. Version, Commit and Date
// are set with -ldflags "-X .../lwc/version.Version=v1.0.0"; otherwise the
// module version from the build info is used.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These will be set by build flags or default to development values
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetVersion returns the version string, preferring compile-time version if available
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}

	return "development"
}

// GetFullVersion returns the version with commit and build date when known.
func GetFullVersion() string {
	v := GetVersion()
	if Commit == "unknown" && Date == "unknown" {
		return v
	}
	return fmt.Sprintf("%s (commit %s, built %s)", v, Commit, Date)
}
