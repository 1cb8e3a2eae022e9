// Package bump contains the version-bump decision logic: whether a build
// should run at all, what build version string it carries, and whether a
// patch increment gets committed back. All side effects go through the
// Effects interface so the rules here stay pure and testable.
package bump

import (
	"fmt"
	"strings"

	"github.com/halloy/verbump/internal/semver"
)

// skipMarkers are the exact, case-sensitive substrings that identify a
// commit produced by the bump step (or an explicit skip request). A commit
// carrying one of these must never retrigger a build.
//
// Any new marker added here must also appear in commitMessageFormat below;
// TestCommitMessageTriggersSkip enforces the coupling.
var skipMarkers = []string{
	"[ci skip]",
	"[skip ci]",
	"Jenkins: Version bump",
}

// commitMessageFormat is the message written by IncrementAndCommit. It
// embeds two of the skip markers so the push cannot loop the pipeline.
const commitMessageFormat = "Jenkins: Version bump to %s [ci skip]"

// ShouldSkipBuild reports whether the commit message carries a skip marker.
func ShouldSkipBuild(commitMessage string) bool {
	for _, m := range skipMarkers {
		if strings.Contains(commitMessage, m) {
			return true
		}
	}
	return false
}

// CommitMessage renders the bump commit message for the given version.
func CommitMessage(v semver.Version) string {
	return fmt.Sprintf(commitMessageFormat, v.String())
}

// BuildVersion is the build-specific version string: the stored semantic
// version qualified with the CI build number and a short commit hash.
// Derived, never persisted.
type BuildVersion struct {
	Version     semver.Version
	BuildNumber string
	ShortCommit string
}

func (b BuildVersion) String() string {
	return fmt.Sprintf("%s-%s-%s", b.Version, b.BuildNumber, b.ShortCommit)
}

// GenerateVersion composes the BuildVersion for this run. The short commit
// is the first 7 characters of commitHash, or "unknown" when absent.
func GenerateVersion(current semver.Version, buildNumber, commitHash string) BuildVersion {
	short := "unknown"
	if commitHash != "" {
		short = commitHash
		if len(short) > 7 {
			short = short[:7]
		}
	}
	return BuildVersion{Version: current, BuildNumber: buildNumber, ShortCommit: short}
}

// SetupOutcome is the tagged result of Setup: either proceed with a build
// version, or abort with a reason. An abort is a distinguished not-built
// outcome, never a failure.
type SetupOutcome struct {
	Proceed bool
	Build   BuildVersion // valid only when Proceed
	Reason  string       // set only when !Proceed
}

// Setup decides whether the build proceeds. A commit message carrying a
// skip marker aborts; otherwise the build version string is generated.
func Setup(commitMessage string, current semver.Version, buildNumber, commitHash string) SetupOutcome {
	if ShouldSkipBuild(commitMessage) {
		return SetupOutcome{Reason: "version bump commit detected"}
	}
	return SetupOutcome{Proceed: true, Build: GenerateVersion(current, buildNumber, commitHash)}
}
