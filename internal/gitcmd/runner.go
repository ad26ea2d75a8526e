// Package gitcmd runs git as a child process with argument arrays, never through a shell.
package gitcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Runner executes git commands with shared logging and output handling.
type Runner struct {
	Dir    string
	Logger zerolog.Logger
}

// Result contains captured stdout/stderr and the exit status of a git command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

func (r Result) StdoutString(trim bool) string {
	output := string(r.Stdout)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Runner) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	return cmd
}

// Run executes a git command and captures stdout/stderr. A non-zero exit is reported
// both in Result.ExitCode and as an *exec.ExitError.
func (r Runner) Run(ctx context.Context, args ...string) (Result, error) {
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	err := r.RunWithWriters(ctx, &outBuf, &errBuf, args...)

	return Result{
		Stdout:   outBuf.Bytes(),
		Stderr:   errBuf.Bytes(),
		ExitCode: ExitCode(err),
	}, err
}

// RunWithWriters executes a git command using the provided writers.
func (r Runner) RunWithWriters(ctx context.Context, stdout, stderr io.Writer, args ...string) error {
	cmd := r.command(ctx, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	r.Logger.Debug().Strs("args", args).Str("dir", r.Dir).Msg("running git")
	err := cmd.Run()
	r.Logger.Debug().Strs("args", args).Int("exit_code", ExitCode(err)).Msg("git finished")

	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("git %s interrupted: %w", strings.Join(args, " "), ctx.Err())
	}
	return err
}

// ExitCode extracts the process exit status from err: 0 for nil, -1 when the process
// never produced one (spawn failure, killed by signal).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
