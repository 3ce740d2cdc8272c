package settings

import (
	"runtime/debug"
)

// GitVersion reports the module version, or the vcs revision for development
// builds.
func GitVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return ""
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}

	var rev, modified string
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			rev = s.Value
		}
		if s.Key == "vcs.modified" {
			modified = s.Value
		}
	}
	if rev != "" {
		if modified == "true" {
			return rev + "-dirty"
		}
		return rev
	}

	return ""
}

// BuildInfo returns the version and the go toolchain that built the binary.
func BuildInfo() (version string, goVersion string) {
	version = GitVersion()
	if version == "" {
		version = "dev"
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		goVersion = bi.GoVersion
	}
	return version, goVersion
}
