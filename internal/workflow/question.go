package workflow

import "github.com/samzong/gitcz/internal/commit"

// Kind selects how a question is rendered.
type Kind int

const (
	KindList Kind = iota
	KindInput
	KindEditor
	KindConfirm
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindInput:
		return "input"
	case KindEditor:
		return "editor"
	case KindConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Question describes one prompt.
type Question struct {
	Kind    Kind
	Name    string
	Message string
	// Choices lists the options of a KindList question.
	Choices []commit.Choice
	// Default is the preselected answer of a KindConfirm question.
	Default bool
	// Validate returns nil to accept raw input or an error whose text is shown to the user.
	Validate func(string) error
	// Filter normalizes accepted input before it is returned.
	Filter func(string) string
}

// Answer is the value collected for a Question: Text for list, input and editor
// questions, Yes for confirmations.
type Answer struct {
	Text string
	Yes  bool
}
