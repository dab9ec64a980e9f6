package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Info describes a stencil build. It is what `stencil version --json` prints.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build information of the running binary.
func GetInfo() Info {
	return Info{
		Version:   resolveVersion(Version, debug.ReadBuildInfo),
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// resolveVersion prefers the ldflags stamp and otherwise uses the main
// module version, which `go install module@vX.Y.Z` records.
func resolveVersion(stamped string, read func() (*debug.BuildInfo, bool)) string {
	if stamped != "dev" {
		return stamped
	}
	bi, ok := read()
	if !ok || bi == nil {
		return stamped
	}
	v := bi.Main.Version
	if v == "" || v == "(devel)" {
		return stamped
	}
	return strings.TrimPrefix(v, "v")
}

// String renders the one-line form printed by `stencil version`, e.g.
// "stencil v1.2.0 (commit: a1b2c3d, built: 2026-02-17T10:00:00Z, go1.24.2 linux/amd64)".
func (i Info) String() string {
	s := fmt.Sprintf("stencil v%s (commit: %s, built: %s", i.Version, i.Commit, i.Date)
	if i.GoVersion != "" {
		s += ", " + i.GoVersion
		if i.Platform != "" {
			s += " " + i.Platform
		}
	}
	return s + ")"
}
