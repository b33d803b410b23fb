package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release string shown by --version.
	Version = "1.0.0"
	Commit  = ""
	Date    = ""
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit,omitempty" yaml:"commit,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
}

// GetVersion returns the release string.
func GetVersion() string {
	if Version == "" {
		return "1.0.0"
	}
	return Version
}

// buildSetting looks up a vcs.* key in the embedded build info.
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

// GetInfo returns version, commit and build date, falling back to build info
// for the latter two.
func GetInfo() Info {
	info := Info{Version: GetVersion(), Commit: Commit, Date: Date}
	if info.Commit == "" {
		info.Commit = buildSetting("vcs.revision")
	}
	if info.Date == "" {
		info.Date = buildSetting("vcs.time")
	}
	return info
}

// ShortCommit returns the first seven characters of the commit, if known.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String formats the info for humans, e.g. "1.0.0 (abc1234, built 2026-01-02)".
func (i Info) String() string {
	switch {
	case i.Commit != "" && i.Date != "":
		return fmt.Sprintf("%s (%s, built %s)", i.Version, i.ShortCommit(), i.Date)
	case i.Commit != "":
		return fmt.Sprintf("%s (%s)", i.Version, i.ShortCommit())
	default:
		return i.Version
	}
}
