// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/cmdshell/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version.
	Version = "0.1.0-dev"
)

// Build is the version information of the running binary.
type Build struct {
	Version string
	Commit  string
	Time    string
	Dirty   bool
}

// Current returns the injected build variables, filled in from the
// toolchain's build information where they were left at defaults.
func Current() Build {
	build := Build{Version: Version, Commit: GitCommit, Time: BuildTime}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return build
	}
	return fromBuildInfo(build, info)
}

func fromBuildInfo(build Build, info *debug.BuildInfo) Build {
	if build.Version == "0.1.0-dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		build.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if build.Commit == "unknown" && len(setting.Value) >= 7 {
				build.Commit = setting.Value[:7]
			}
		case "vcs.time":
			if build.Time == "unknown" {
				build.Time = setting.Value
			}
		case "vcs.modified":
			build.Dirty = setting.Value == "true"
		}
	}
	return build
}

// String formats the build for --version output:
// "0.1.0-dev (abc1234, 2026-02-10T12:00:00Z)".
func (b Build) String() string {
	dirty := ""
	if b.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", b.Version, b.Commit, dirty, b.Time)
}

// Info returns the current build formatted by [Build.String].
func Info() string {
	return Current().String()
}

// Full returns Info plus the Go version and platform.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
