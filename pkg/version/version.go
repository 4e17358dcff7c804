package version

import (
	"runtime"
	"runtime/debug"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags at build time
var (
	GitTag    string
	GitBranch string
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Info describes the build of an executable
type Info struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Compiler string `json:"compiler"`
	Source   string `json:"source,omitempty"`
	Hash     string `json:"hash,omitempty"`
	Time     string `json:"build_time,omitempty"`
	Platform string `json:"platform,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or revision of the build, or "dev"
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}
	return "dev"
}

// New returns the build information for the named executable
func New(name string) Info {
	info := Info{
		Name:     name,
		Version:  Version(),
		Compiler: runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	if build, ok := debug.ReadBuildInfo(); ok {
		info.Source = build.Main.Path
		for _, s := range build.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Hash = s.Value
			case "vcs.time":
				info.Time = s.Value
			}
		}
	}
	return info
}

func (i Info) String() string {
	return types.Stringify(i)
}
