package buildinfo

import "testing"

func TestVersionSimpleWithoutCommit(t *testing.T) {
	if got := VersionSimple(); got != version {
		t.Fatalf("unstamped build: want %q, got %q", version, got)
	}
}

func TestShortCommitTruncation(t *testing.T) {
	old := commit
	t.Cleanup(func() { commit = old })

	commit = "abcdef1234567890"
	if got := ShortCommit(); got != "abcdef1" {
		t.Fatalf("got %q", got)
	}
	if got := VersionSimple(); got != version+" (abcdef1)" {
		t.Fatalf("got %q", got)
	}

	commit = "abc"
	if got := ShortCommit(); got != "abc" {
		t.Fatalf("short hashes pass through, got %q", got)
	}
}
