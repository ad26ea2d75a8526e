// Package workflow provides the commit workflow orchestration logic.
package workflow

import "context"

// GitClient abstracts git operations for testability.
type GitClient interface {
	IsGitRepository(ctx context.Context) (bool, error)
	HasStagedChanges(ctx context.Context) (bool, error)
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string, args ...string) (string, error)
}

// Prompter asks a single question and returns the user's answer. Implementations
// re-present a question until its Validate func accepts the input, apply Filter before
// returning, and report ErrUnsupportedEnvironment when no interactive terminal exists.
type Prompter interface {
	Ask(ctx context.Context, q Question) (Answer, error)
}
