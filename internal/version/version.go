package version

import (
	"fmt"
	"runtime"
)

// These values are overridden at build time via -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown" // RFC3339 UTC preferred
)

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the one-line banner shown by the shell and --version.
func (i Info) String() string {
	if i.GitCommit == "" || i.GitCommit == "unknown" {
		return fmt.Sprintf("asciigen v%s", i.Version)
	}
	return fmt.Sprintf("asciigen v%s (%s)", i.Version, i.GitCommit)
}
