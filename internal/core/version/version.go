// Package version provides information about the build version of the service.
package version

import "runtime/debug"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// Info returns the build information. The version, commit, and date variables
// are set at build time with -ldflags, for example
// -X 'patchgate/internal/core/version.version=v0.1.0' -X 'patchgate/internal/core/version.commit=abcd'
func Info() BuildInfo {
	bi := BuildInfo{
		Service: "patchgate-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if info, ok := readBuildInfo(); ok {
		bi.GoVersion = info.GoVersion
		if bi.Commit == "none" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					bi.Commit = s.Value
				}
			}
		}
	}
	return bi
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo // seam
)
