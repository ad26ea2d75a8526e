package gitutil

import (
	"fmt"

	"github.com/samzong/gitcz/internal/gitcmd"
)

// ProcessError reports a git invocation that failed or exited non-zero.
type ProcessError struct {
	Action   string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s (exit code %d): %s", e.Action, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s (exit code %d): %v", e.Action, e.ExitCode, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// WrapGitError builds a ProcessError that prefers git stderr output when present.
func WrapGitError(action string, result gitcmd.Result, err error) error {
	return &ProcessError{
		Action:   action,
		ExitCode: gitcmd.ExitCode(err),
		Stderr:   result.StderrString(true),
		Err:      err,
	}
}
