// Package git exposes the repository queries and commands used by the commit flow.
package git

import (
	"context"
	"errors"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/samzong/gitcz/internal/gitcmd"
	"github.com/samzong/gitcz/internal/gitutil"
)

// Options configures a Client.
type Options struct {
	Dir    string
	Logger zerolog.Logger
}

// Client runs git in a single working directory.
type Client struct {
	runner gitcmd.Runner
}

func NewClient(opts Options) *Client {
	return &Client{
		runner: gitcmd.Runner{Dir: opts.Dir, Logger: opts.Logger},
	}
}

// IsGitRepository reports whether the working directory is inside a work tree. A
// non-zero exit from rev-parse means "no"; failing to run git at all is an error.
func (c *Client) IsGitRepository(ctx context.Context) (bool, error) {
	result, err := c.runner.Run(ctx, "rev-parse", "--is-inside-work-tree")
	if err == nil {
		return result.StdoutString(true) == "true", nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, gitutil.WrapGitError("failed to locate repository", result, err)
}

// HasStagedChanges reports whether the index differs from HEAD.
// `git diff --cached --quiet` exits 1 when there are differences; any other non-zero
// status means the query itself failed.
func (c *Client) HasStagedChanges(ctx context.Context) (bool, error) {
	result, err := c.runner.Run(ctx, "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, gitutil.WrapGitError("failed to query staged changes", result, err)
}

// AddAll stages every change in the work tree, including deletions and new files.
func (c *Client) AddAll(ctx context.Context) error {
	result, err := c.runner.Run(ctx, "add", "-A")
	if err != nil {
		return gitutil.WrapGitError("git add failed", result, err)
	}
	return nil
}

// Commit creates a commit. The message travels as one argv element, so quotes and
// shell metacharacters reach git untouched. It returns git's stdout.
func (c *Client) Commit(ctx context.Context, message string, args ...string) (string, error) {
	commitArgs := append([]string{"commit", "-m", message}, args...)
	result, err := c.runner.Run(ctx, commitArgs...)
	if err != nil {
		return "", gitutil.WrapGitError("git commit failed", result, err)
	}
	return result.StdoutString(true), nil
}
