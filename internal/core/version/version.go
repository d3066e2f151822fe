// Package version reports the build identity of the careerassist binaries.
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Info returns the build information for the API binary.
func Info() BuildInfo { return For("careerassist-api") }

// For returns the build information under the given service name. Version, commit
// and date are set at build time:
//
//	-ldflags "-X 'careerassist/internal/core/version.version=v0.1.0' -X 'careerassist/internal/core/version.commit=abcd'"
//
// Without ldflags the commit and date fall back to the VCS stamp embedded by the go tool.
func For(service string) BuildInfo {
	bi := BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && bi.Commit == "none":
				bi.Commit = s.Value
			case s.Key == "vcs.time" && bi.Date == "unknown":
				bi.Date = s.Value
			}
		}
	}
	return bi
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
