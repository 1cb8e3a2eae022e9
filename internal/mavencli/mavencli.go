// Package mavencli wraps the mvn command line for stamping the project
// version into the build manifest. It plays no part in the bump decision.
package mavencli

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/halloy/verbump/internal/apperr"
)

// Exec abstracts mvn command execution for ease of testing.
type Exec interface {
	RunInDir(ctx context.Context, dir string, args ...string) (string, error)
}

// SystemExec is a real implementation that shells out to the mvn CLI.
type SystemExec struct {
	DefaultTimeout time.Duration
}

func (s SystemExec) RunInDir(ctx context.Context, dir string, args ...string) (string, error) {
	if s.DefaultTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.DefaultTimeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, "mvn", args...)
	cmd.Env = os.Environ()
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.String(), apperr.Wrap("mavencli.Exec", apperr.External, err, "%s", stderr.String())
	}
	return stdout.String(), nil
}

// Client provides the version-stamping helper around mvn.
type Client struct {
	exec Exec
}

func New() *Client { return &Client{exec: SystemExec{}} }

// NewWithExec allows injecting a custom executor (tests).
func NewWithExec(e Exec) *Client { return &Client{exec: e} }

// SetVersion rewrites the project version in the build manifest under dir.
func (c *Client) SetVersion(ctx context.Context, dir, version string) error {
	if version == "" {
		return apperr.New("mavencli.SetVersion", apperr.InvalidInput, "version required")
	}
	_, err := c.exec.RunInDir(ctx, dir, "-B", "versions:set", "-DnewVersion="+version, "versions:commit")
	return err
}
