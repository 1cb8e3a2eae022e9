// Package gitcli wraps the git command line. It is the only place the tool
// touches the repository's working tree or history; everything above it
// consumes the narrow helpers below so decision logic stays testable
// without a real repository.
package gitcli

import (
	"context"
	"strings"

	"github.com/halloy/verbump/internal/apperr"
)

// Client provides higher-level helpers around the git CLI.
type Client struct {
	exec Exec
}

func New(dir string) *Client {
	return &Client{exec: SystemExec{Dir: dir}}
}

// NewWithExec allows injecting a custom executor (tests).
func NewWithExec(e Exec) *Client { return &Client{exec: e} }

// CheckRepo verifies the working directory is inside a git work tree.
func (c *Client) CheckRepo(ctx context.Context) error {
	if _, err := c.exec.Run(ctx, "rev-parse", "--is-inside-work-tree"); err != nil {
		return apperr.Wrap("gitcli.CheckRepo", apperr.Unavailable, err, "not a git repository")
	}
	return nil
}

// HeadCommitMessage returns the full message of the HEAD commit.
func (c *Client) HeadCommitMessage(ctx context.Context) (string, error) {
	out, err := c.exec.Run(ctx, "log", "-1", "--pretty=%B")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\r\n"), nil
}

// HeadCommitHash returns the full HEAD commit hash.
func (c *Client) HeadCommitHash(ctx context.Context) (string, error) {
	out, err := c.exec.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the current branch name as git reports it.
// Callers are expected to strip a leading "origin/" before pushing.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.exec.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RemoteURL returns the fetch URL of the origin remote.
func (c *Client) RemoteURL(ctx context.Context) (string, error) {
	out, err := c.exec.Run(ctx, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// HasUncommittedChanges reports whether path differs from the tracked state.
func (c *Client) HasUncommittedChanges(ctx context.Context, path string) (bool, error) {
	out, err := c.exec.Run(ctx, "status", "--porcelain", "--", path)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// StageCommitPush stages path, commits it with message as the given
// identity, and pushes HEAD to branch on the credential-embedded remote.
// The sequence stops at the first failing step; no retries.
func (c *Client) StageCommitPush(ctx context.Context, path, message string, ident Identity, creds Credentials, remoteURL, branch string) error {
	authURL, err := WithAuth(remoteURL, creds)
	if err != nil {
		return err
	}
	steps := [][]string{
		{"config", "user.name", ident.Name},
		{"config", "user.email", ident.Email},
		{"add", "--", path},
		{"commit", "-m", message},
		{"push", authURL, "HEAD:" + branch},
	}
	for _, args := range steps {
		if _, err := c.exec.Run(ctx, args...); err != nil {
			return apperr.Wrap("gitcli.StageCommitPush", apperr.External, err, "git %s failed", args[0])
		}
	}
	return nil
}

// Identity is the committer identity written into the bump commit.
type Identity struct {
	Name  string
	Email string
}
