// Package version holds the build information reported by retail commands.
package version

import (
	"fmt"
	"runtime"
)

// Info is filled from linker variables at build time
type Info struct {
	// Version is the display string, e.g. "retail v1.2.0-4f9f297"
	Version string `json:"version" yaml:"version"`

	// ReleaseVersion is the semantic version (e.g., "1.2.0")
	ReleaseVersion string `json:"release_version" yaml:"release_version"`

	// BuildDate is the ISO 8601 build timestamp
	BuildDate string `json:"build_date" yaml:"build_date"`

	// GitCommit is the short git commit hash
	GitCommit string `json:"git_commit" yaml:"git_commit"`

	// GoVersion is the toolchain the binary was built with
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// New creates an Info for an unreleased build
func New() *Info {
	return &Info{
		Version:        "dev",
		ReleaseVersion: "0.0.0",
		BuildDate:      "unknown",
		GitCommit:      "unknown",
		GoVersion:      runtime.Version(),
	}
}

// String returns the display version
func (i *Info) String() string {
	return i.Version
}

// Short returns release version and commit
func (i *Info) Short() string {
	return fmt.Sprintf("v%s-%s", i.ReleaseVersion, i.GitCommit)
}

// Full returns a multi-line description of the build
func (i *Info) Full() string {
	return fmt.Sprintf(`%s
  Version:    %s
  Build Date: %s
  Git Commit: %s
  Go Version: %s`,
		i.Version,
		i.ReleaseVersion,
		i.BuildDate,
		i.GitCommit,
		i.GoVersion,
	)
}
