package buildtime

import (
	"runtime/debug"
)

// set with -ldflags "-X github.com/opst/trackboard/pkg/buildtime.version=..."
var (
	version  = "dev"
	revision = ""
)

// version string when this trackboard has been built.
func VERSION() string {
	return version
}

// GIT_REVISION returns the commit hash trackboard has been built from.
//
// If not given at build time, it is taken from the build info.
func GIT_REVISION() string {
	if revision != "" {
		return revision
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

func VersionString() string {
	return VERSION() + " (commit: " + GIT_REVISION() + ")"
}
