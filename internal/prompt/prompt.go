// Package prompt renders workflow questions with charmbracelet/huh.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/samzong/gitcz/internal/workflow"
)

// Engine implements workflow.Prompter on an interactive terminal.
type Engine struct {
	// Stdin defaults to os.Stdin. Prompts are refused unless it is a terminal.
	Stdin *os.File
	// Output defaults to os.Stderr.
	Output io.Writer
	// Accessible switches huh to its line-based accessible mode.
	Accessible bool
}

func NewEngine(accessible bool) *Engine {
	return &Engine{Stdin: os.Stdin, Output: os.Stderr, Accessible: accessible}
}

// Ask renders q and blocks until it is answered. Invalid input is re-prompted inside
// the form and never returned.
func (e *Engine) Ask(ctx context.Context, q workflow.Question) (workflow.Answer, error) {
	stdin := e.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if !isTerminal(stdin) {
		return workflow.Answer{}, workflow.ErrUnsupportedEnvironment
	}

	var answer workflow.Answer
	field, err := buildField(q, &answer)
	if err != nil {
		return workflow.Answer{}, err
	}

	output := e.Output
	if output == nil {
		output = os.Stderr
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(Theme()).
		WithAccessible(e.Accessible).
		WithShowHelp(false).
		WithInput(stdin).
		WithOutput(output)

	if err := form.RunWithContext(ctx); err != nil {
		return workflow.Answer{}, translateError(ctx, err)
	}

	if q.Filter != nil {
		answer.Text = q.Filter(answer.Text)
	}
	return answer, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func translateError(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, huh.ErrUserAborted):
		return fmt.Errorf("%w: %w", workflow.ErrUserAbort, err)
	default:
		return fmt.Errorf("prompt failed: %w", err)
	}
}

func buildField(q workflow.Question, answer *workflow.Answer) (huh.Field, error) {
	switch q.Kind {
	case workflow.KindList:
		if len(q.Choices) == 0 {
			return nil, fmt.Errorf("question %q has no choices", q.Name)
		}
		options := make([]huh.Option[string], 0, len(q.Choices))
		for _, c := range q.Choices {
			options = append(options, huh.NewOption(c.Label, c.Value))
		}
		return huh.NewSelect[string]().
			Key(q.Name).
			Title(q.Message).
			Options(options...).
			Value(&answer.Text), nil

	case workflow.KindInput:
		input := huh.NewInput().
			Key(q.Name).
			Title(q.Message).
			Value(&answer.Text)
		if q.Validate != nil {
			input = input.Validate(q.Validate)
		}
		return input, nil

	case workflow.KindEditor:
		text := huh.NewText().
			Key(q.Name).
			Title(q.Message).
			Description("ctrl+e opens " + getEditor()).
			Editor(editorCommand()...).
			Value(&answer.Text)
		if q.Validate != nil {
			text = text.Validate(q.Validate)
		}
		return text, nil

	case workflow.KindConfirm:
		answer.Yes = q.Default
		return huh.NewConfirm().
			Key(q.Name).
			Title(q.Message).
			Affirmative("Yes").
			Negative("No").
			Value(&answer.Yes), nil

	default:
		return nil, fmt.Errorf("question %q has unsupported kind %s", q.Name, q.Kind)
	}
}

func getEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if editor := strings.TrimSpace(os.Getenv("VISUAL")); editor != "" {
		return editor
	}
	return "vi"
}

// editorCommand splits the editor setting into a command and its arguments, so
// values like "code --wait" launch code with --wait.
func editorCommand() []string {
	return strings.Fields(getEditor())
}
