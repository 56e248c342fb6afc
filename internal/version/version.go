// Package version provides the build version of the tool
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// set by the linker with -X
var (
	version = ""
	commit  = ""
)

// Info describes the build
type Info struct {
	Version string
	Commit  string
	Runtime string
}

// Current returns the version of the running binary
func Current() Info {
	v := Info{
		Version: version,
		Commit:  commit,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		v.Runtime = bi.GoVersion
		if v.Version == "" {
			v.Version = bi.Main.Version
		}
		if v.Commit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					v.Commit = s.Value
				}
			}
		}
	}
	if v.Version == "" || v.Version == "(devel)" {
		v.Version = "v0.0.0-dev"
	}
	return v
}

func (v Info) String() string {
	s := strings.TrimPrefix(v.Version, "v")
	if v.Commit != "" {
		if len(v.Commit) > 7 {
			return fmt.Sprintf("%s (%s)", s, v.Commit[:7])
		}
		return fmt.Sprintf("%s (%s)", s, v.Commit)
	}
	return s
}
