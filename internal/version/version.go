// Package version reports build metadata injected via -ldflags, falling
// back to module information when installed with `go install`.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// ProjectName is used in the user agent, config and log directories.
const ProjectName = "shoptui"

const unknown = "unknown"

// Set at build time:
//
//	-ldflags "-X github.com/devnullvoid/shoptui/internal/version.version=1.2.3"
var (
	version   = "dev"
	buildDate = unknown
	commit    = unknown
)

// BuildInfo contains build-time information.
type BuildInfo struct {
	Version   string
	BuildDate string
	Commit    string
	GoVersion string
	OS        string
	Arch      string
}

// GetBuildInfo returns the current build information.
func GetBuildInfo() *BuildInfo {
	info := &BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		Commit:    commit,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	if info.Version != "dev" {
		return info
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	fillFromModule(info, buildInfo)

	return info
}

func fillFromModule(info *BuildInfo, buildInfo *debug.BuildInfo) {
	if v := buildInfo.Main.Version; v != "" && v != "(devel)" {
		info.Version = strings.TrimPrefix(v, "v")
	}

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == unknown && len(setting.Value) >= 7 {
				info.Commit = setting.Value[:7]
			}
		case "vcs.time":
			if info.BuildDate == unknown {
				info.BuildDate = setting.Value
			}
		}
	}
}

// GetVersionString returns the short version, e.g. "v1.2.3".
func GetVersionString() string {
	return "v" + GetBuildInfo().Version
}

// String renders the multi-line output of --version.
func (b *BuildInfo) String() string {
	return fmt.Sprintf("%s v%s\nCommit: %s\nBuilt: %s\nGo: %s %s/%s",
		ProjectName, b.Version, b.Commit, b.BuildDate, b.GoVersion, b.OS, b.Arch)
}

// UserAgent is sent with every catalog request.
func UserAgent() string {
	return ProjectName + "/" + GetBuildInfo().Version
}
