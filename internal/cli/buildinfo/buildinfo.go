// Package buildinfo exposes the tool's own build metadata, injected via
// -ldflags at release time; defaults are used for dev builds.
package buildinfo

var (
	version = "0.1.0-dev"
	commit  = ""
	date    = ""
)

// Version returns the semantic version string.
func Version() string { return version }

// VersionSimple returns the version with a short commit hash, for --version.
func VersionSimple() string {
	if commit == "" {
		return version
	}
	return version + " (" + ShortCommit() + ")"
}

// ShortCommit returns the first 7 characters of the build commit, or "" when
// the binary was not stamped.
func ShortCommit() string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

// Commit returns the full commit hash if provided via -ldflags.
func Commit() string { return commit }

// BuildDate returns the build date if provided via -ldflags.
func BuildDate() string { return date }
