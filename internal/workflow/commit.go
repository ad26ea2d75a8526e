package workflow

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/samzong/gitcz/internal/commit"
	"github.com/samzong/gitcz/internal/ui"
)

type CommitOptions struct {
	AddAll           bool
	NoVerify         bool
	Signoff          bool
	DryRun           bool
	AutoYes          bool
	Types            []string
	MaxSubjectLength int
	ErrWriter        io.Writer
	OutWriter        io.Writer
	Logger           zerolog.Logger
}

// Result describes a flow that finished without error.
type Result struct {
	Message   string
	Committed bool
	GitOutput string
}

type CommitFlow struct {
	git      GitClient
	prompter Prompter
	opts     CommitOptions
}

func NewCommitFlow(git GitClient, prompter Prompter, opts CommitOptions) *CommitFlow {
	if opts.ErrWriter == nil {
		opts.ErrWriter = io.Discard
	}
	if opts.OutWriter == nil {
		opts.OutWriter = io.Discard
	}
	opts.Types = commit.NormalizeTypes(opts.Types)
	if opts.MaxSubjectLength <= 0 {
		opts.MaxSubjectLength = commit.DefaultMaxSubjectLength
	}

	return &CommitFlow{
		git:      git,
		prompter: prompter,
		opts:     opts,
	}
}

// Run checks for a work tree and for staged changes, then collects the answers and
// commits. Abort paths return errors wrapping ErrNotRepository, ErrUserAbort or
// ErrUnsupportedEnvironment; use Classify to tell them apart.
func (f *CommitFlow) Run(ctx context.Context) (Result, error) {
	if err := f.checkRepository(ctx); err != nil {
		return Result{}, err
	}

	if err := f.handleStaging(ctx); err != nil {
		return Result{}, err
	}

	proceed, err := f.checkStaged(ctx)
	if err != nil {
		return Result{}, err
	}
	if !proceed {
		return Result{}, fmt.Errorf("no staged changes: %w", ErrUserAbort)
	}

	answers, err := f.collectAnswers(ctx)
	if err != nil {
		return Result{}, err
	}
	if !answers.Confirm {
		return Result{}, fmt.Errorf("commit not confirmed: %w", ErrUserAbort)
	}

	message := commit.Assemble(answers)
	return f.performCommit(ctx, message)
}

func (f *CommitFlow) checkRepository(ctx context.Context) error {
	inside, err := f.git.IsGitRepository(ctx)
	if err != nil {
		return fmt.Errorf("failed to locate repository: %w", err)
	}
	if !inside {
		return ErrNotRepository
	}
	return nil
}

func (f *CommitFlow) handleStaging(ctx context.Context) error {
	if !f.opts.AddAll {
		return nil
	}

	if err := f.git.AddAll(ctx); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	fmt.Fprintln(f.opts.ErrWriter, "All changes have been added to the staging area.")
	return nil
}

// checkStaged proceeds silently when the index has changes and otherwise asks whether
// to commit anyway. A failed query is returned as an error, never as "proceed".
func (f *CommitFlow) checkStaged(ctx context.Context) (bool, error) {
	staged, err := f.git.HasStagedChanges(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	if staged {
		return true, nil
	}

	f.opts.Logger.Debug().Msg("no staged changes, asking for confirmation")
	answer, err := f.prompter.Ask(ctx, noStagedChangesQuestion())
	if err != nil {
		return false, err
	}
	return answer.Yes, nil
}

func (f *CommitFlow) collectAnswers(ctx context.Context) (commit.Answers, error) {
	var r record
	for _, s := range buildSteps(f.opts.Types, f.opts.MaxSubjectLength) {
		if err := f.runStep(ctx, &r, s); err != nil {
			return commit.Answers{}, err
		}
	}

	preview := commit.Assemble(r.Answers)
	fmt.Fprintln(f.opts.ErrWriter)
	fmt.Fprintln(f.opts.ErrWriter, ui.RenderPreview(preview))

	if f.opts.AutoYes {
		fmt.Fprintln(f.opts.ErrWriter, "Auto-confirming commit message (-y flag is set)")
		r.Confirm = true
		return r.Answers, nil
	}

	if err := f.runStep(ctx, &r, confirmStep()); err != nil {
		return commit.Answers{}, err
	}
	return r.Answers, nil
}

func (f *CommitFlow) runStep(ctx context.Context, r *record, s step) error {
	if s.when != nil && !s.when(*r) {
		f.opts.Logger.Debug().Str("step", s.question.Name).Msg("step skipped")
		return nil
	}

	answer, err := f.prompter.Ask(ctx, s.question)
	if err != nil {
		return fmt.Errorf("prompt %q: %w", s.question.Name, err)
	}
	s.store(r, answer)
	f.opts.Logger.Debug().Str("step", s.question.Name).Msg("step answered")
	return nil
}

func (f *CommitFlow) buildCommitArgs() []string {
	var args []string
	if f.opts.NoVerify {
		args = append(args, "--no-verify")
	}
	if f.opts.Signoff {
		args = append(args, "-s")
	}
	return args
}

func (f *CommitFlow) performCommit(ctx context.Context, message string) (Result, error) {
	if f.opts.DryRun {
		fmt.Fprintln(f.opts.ErrWriter, "Dry run mode, no actual commit")
		fmt.Fprintln(f.opts.OutWriter, message)
		return Result{Message: message}, nil
	}

	sp := ui.NewSpinner("Committing...")
	sp.Start()
	output, err := f.git.Commit(ctx, message, f.buildCommitArgs()...)
	sp.Stop()

	if err != nil {
		return Result{Message: message}, fmt.Errorf("failed to commit changes: %w", err)
	}

	if output != "" {
		fmt.Fprintln(f.opts.OutWriter, output)
	}
	return Result{Message: message, Committed: true, GitOutput: output}, nil
}
