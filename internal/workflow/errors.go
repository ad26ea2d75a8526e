package workflow

import (
	"context"
	"errors"

	"github.com/samzong/gitcz/internal/gitutil"
)

var (
	// ErrUserAbort is returned when the user declines a confirmation gate or
	// interrupts a prompt.
	ErrUserAbort = errors.New("aborted by user")
	// ErrUnsupportedEnvironment is returned when prompts cannot be rendered because
	// no interactive terminal is attached.
	ErrUnsupportedEnvironment = errors.New("interactive prompts are not supported in this environment")
	// ErrNotRepository is returned when the working directory is not inside a git
	// work tree.
	ErrNotRepository = errors.New("not a git repository")
)

// Outcome classifies how a flow ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeUserAbort
	OutcomeUnsupported
	OutcomeNotRepository
	OutcomeProcessFailure
	OutcomeInterrupted
	OutcomeFailure
)

// Classify maps the error returned by CommitFlow.Run to an Outcome.
func Classify(err error) Outcome {
	var perr *gitutil.ProcessError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrUserAbort):
		return OutcomeUserAbort
	case errors.Is(err, ErrUnsupportedEnvironment):
		return OutcomeUnsupported
	case errors.Is(err, ErrNotRepository):
		return OutcomeNotRepository
	case errors.Is(err, context.Canceled):
		return OutcomeInterrupted
	case errors.As(err, &perr):
		return OutcomeProcessFailure
	default:
		return OutcomeFailure
	}
}

// ExitCode is the process exit status for the outcome.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeSuccess:
		return 0
	case OutcomeInterrupted:
		return 130 // Standard exit code for SIGINT
	default:
		return 1
	}
}

// Headline is the user-facing summary printed for the outcome.
func (o Outcome) Headline() string {
	switch o {
	case OutcomeSuccess:
		return "Successfully committed changes!"
	case OutcomeUserAbort:
		return "Commit aborted by user"
	case OutcomeUnsupported:
		return "Interactive prompts are not supported in this environment. Run gitcz from an interactive terminal."
	case OutcomeNotRepository:
		return "Not a git repository (run gitcz inside a work tree)"
	case OutcomeProcessFailure:
		return "Git command failed"
	case OutcomeInterrupted:
		return "Operation cancelled"
	default:
		return "Unexpected error"
	}
}
