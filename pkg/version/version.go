// Package version reports the build metadata stamped into the srcfmt binary.
package version

import (
	"fmt"
	"runtime"
)

// Release builds overwrite these through the linker, for instance:
//
//	go build -ldflags "-X srcfmt/pkg/version.Version=0.3.0 -X srcfmt/pkg/version.Commit=$(git rev-parse --short HEAD)"
//
// Local builds keep the placeholders.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown" // RFC 3339
)

// Info is a snapshot of the build metadata together with the toolchain and
// target the binary was compiled for.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string // runtime.Version()
	Platform  string // GOOS/GOARCH
}

// Get collects Info for the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders i on one line, as printed by "srcfmt version".
func (i Info) String() string {
	return fmt.Sprintf("srcfmt version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
