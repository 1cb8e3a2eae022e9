package apperr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/halloy/verbump/internal/apperr"
)

var errSentinel = errors.New("key version.patch missing")

func TestWrapPreservesSentinel(t *testing.T) {
	err := apperr.Wrap("semver.Parse", apperr.InvalidInput, errSentinel, "parse %s", "version.properties")
	if !errors.Is(err, errSentinel) {
		t.Fatalf("want Is(..., errSentinel)=true")
	}
	if !apperr.IsKind(err, apperr.InvalidInput) {
		t.Fatalf("want kind=InvalidInput")
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if err := apperr.Wrap("semver.Parse", apperr.InvalidInput, nil, "ignored"); err != nil {
		t.Fatalf("wrap(nil) should be nil, got %v", err)
	}
}

func TestErrorStringIncludesOpAndMsg(t *testing.T) {
	err := apperr.New("gitcli.StageCommitPush", apperr.External, "git push failed")
	got := err.Error()
	if !strings.Contains(got, "gitcli.StageCommitPush: git push failed") {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestErrorStringFallsBackToCause(t *testing.T) {
	err := apperr.Wrap("bump.IncrementAndCommit", apperr.Overflow, errors.New("patch at ceiling"), "")
	if !strings.Contains(err.Error(), "patch at ceiling") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
}

func TestIsKindFalseForPlainError(t *testing.T) {
	if apperr.IsKind(errors.New("plain"), apperr.External) {
		t.Fatal("plain errors have no kind")
	}
}
