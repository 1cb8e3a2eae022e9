package bump

import (
	"context"

	"github.com/halloy/verbump/internal/gitcli"
	"github.com/halloy/verbump/internal/logger"
	"github.com/halloy/verbump/internal/semver"
)

// Effects is the boundary through which the controller touches the
// repository. gitcli.Client implements it; tests substitute a recorder.
type Effects interface {
	HasUncommittedChanges(ctx context.Context, path string) (bool, error)
	StageCommitPush(ctx context.Context, path, message string, ident gitcli.Identity, creds gitcli.Credentials, remoteURL, branch string) error
}

var _ Effects = (*gitcli.Client)(nil)

// Outcome tags a Decision.
type Outcome string

const (
	Committed Outcome = "committed"
	Skipped   Outcome = "skipped"
	Failed    Outcome = "failed"
)

// Decision is the result of one increment-and-commit attempt. Produced once
// per attempt; never retried here.
type Decision struct {
	Outcome Outcome
	Version semver.Version // the committed version, when Outcome == Committed
	Reason  string         // set when Outcome == Skipped
	Err     error          // set when Outcome == Failed
}

func (d Decision) String() string {
	switch d.Outcome {
	case Committed:
		return "committed " + d.Version.String()
	case Skipped:
		return "skipped: " + d.Reason
	case Failed:
		if d.Err == nil {
			return "failed"
		}
		return "failed: " + logger.RedactText(d.Err.Error())
	}
	return string(d.Outcome)
}

// Controller orchestrates the increment-and-commit sequence for one
// repository. The caller serializes invocations; one pipeline run at a time.
type Controller struct {
	Effects     Effects
	VersionFile string
	Ident       gitcli.Identity
	Creds       gitcli.Credentials
	RemoteURL   string
	Branch      string
	Log         logger.Logger
}

func (c *Controller) log() logger.Logger {
	if c.Log == nil {
		return logger.Nop()
	}
	return c.Log
}

// IncrementAndCommit writes current+patch to the version file and, if that
// actually changed the tracked state, commits and pushes it.
//
// The returned version is the new stored version: it only advances past
// current when the push succeeded. Collaborator failures are reported as a
// Failed decision, not as an error, so the caller can still build with the
// un-bumped version. The error return is reserved for fatal conditions
// (patch overflow, unwritable version file).
func (c *Controller) IncrementAndCommit(ctx context.Context, current semver.Version) (semver.Version, Decision, error) {
	next, err := semver.IncrementPatch(current)
	if err != nil {
		return current, Decision{}, err
	}
	if err := semver.WriteFile(c.VersionFile, next); err != nil {
		return current, Decision{}, err
	}

	changed, err := c.Effects.HasUncommittedChanges(ctx, c.VersionFile)
	if err != nil {
		return current, Decision{Outcome: Failed, Err: err}, nil
	}
	if !changed {
		// Repository already holds this content; repeated calls must not
		// increment twice.
		c.log().Info("version_bump", "status", "skipped", "reason", "no changes", "version", current.String())
		return current, Decision{Outcome: Skipped, Reason: "no changes"}, nil
	}

	msg := CommitMessage(next)
	st := logger.StartStep(c.log(), "stage_commit_push", c.VersionFile, "version", next.String(), "branch", c.Branch)
	if err := c.Effects.StageCommitPush(ctx, c.VersionFile, msg, c.Ident, c.Creds, c.RemoteURL, c.Branch); err != nil {
		_ = st.Fail(err)
		return current, Decision{Outcome: Failed, Err: err}, nil
	}
	st.OK(true)
	return next, Decision{Outcome: Committed, Version: next}, nil
}
