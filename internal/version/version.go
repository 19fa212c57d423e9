package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// shortCommitLength is the number of revision characters shown.
const shortCommitLength = 7

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns a human-readable version string with commit, build time and Go version.
// Commit and build time fall back to the VCS stamp of the binary when not injected.
func Full() string {
	commit, builtAt := Commit, BuildTime

	if info, ok := debug.ReadBuildInfo(); ok {
		commit, builtAt = fromBuildSettings(info.Settings, commit, builtAt)
	}

	return fmt.Sprintf("version: %s, commit: %s, built at: %s, %s", Version, commit, builtAt, runtime.Version())
}

// fromBuildSettings fills the defaults from vcs.revision and vcs.time.
func fromBuildSettings(settings []debug.BuildSetting, commit, builtAt string) (string, string) {
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "none" && setting.Value != "" {
				commit = setting.Value[:min(len(setting.Value), shortCommitLength)]
			}
		case "vcs.time":
			if builtAt == "unknown" && setting.Value != "" {
				builtAt = setting.Value
			}
		}
	}

	return commit, builtAt
}
