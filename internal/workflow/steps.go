package workflow

import (
	"github.com/samzong/gitcz/internal/commit"
)

// record is the state threaded through the steps. addBody answers the nested
// "add a body?" question and is not part of the assembled message.
type record struct {
	commit.Answers
	addBody bool
}

// step is one entry of the ordered prompt sequence.
type step struct {
	question Question
	// when reports whether the step runs given the answers collected so far.
	// A nil when means always.
	when  func(record) bool
	store func(*record, Answer)
}

func buildSteps(types []string, maxSubjectLength int) []step {
	return []step{
		{
			question: Question{
				Kind:    KindList,
				Name:    "type",
				Message: "Select the type of change you're committing",
				Choices: commit.TypeChoices(types),
			},
			store: func(r *record, a Answer) { r.Type = a.Text },
		},
		{
			question: Question{
				Kind:    KindInput,
				Name:    "scope",
				Message: "What is the scope of this change? (press enter to skip)",
				Filter:  commit.Trim,
			},
			store: func(r *record, a Answer) { r.Scope = a.Text },
		},
		{
			question: Question{
				Kind:    KindInput,
				Name:    "subject",
				Message: "Write a short, imperative tense description of the change",
				Validate: func(s string) error {
					return commit.ValidateSubject(s, maxSubjectLength)
				},
				Filter: commit.NormalizeSubject,
			},
			store: func(r *record, a Answer) { r.Subject = a.Text },
		},
		{
			question: Question{
				Kind:    KindConfirm,
				Name:    "addBody",
				Message: "Do you want to add a longer description?",
			},
			store: func(r *record, a Answer) { r.addBody = a.Yes },
		},
		{
			question: Question{
				Kind:    KindEditor,
				Name:    "body",
				Message: "Provide a longer description of the change",
				Filter:  commit.Trim,
			},
			when:  func(r record) bool { return r.addBody },
			store: func(r *record, a Answer) { r.Body = a.Text },
		},
		{
			question: Question{
				Kind:    KindConfirm,
				Name:    "breaking",
				Message: "Are there any breaking changes?",
			},
			store: func(r *record, a Answer) { r.Breaking = a.Yes },
		},
		{
			question: Question{
				Kind:     KindInput,
				Name:     "breakingDescription",
				Message:  "Describe the breaking changes",
				Validate: commit.ValidateBreakingDescription,
				Filter:   commit.Trim,
			},
			when:  func(r record) bool { return r.Breaking },
			store: func(r *record, a Answer) { r.BreakingDescription = a.Text },
		},
	}
}

func confirmStep() step {
	return step{
		question: Question{
			Kind:    KindConfirm,
			Name:    "confirm",
			Message: "Commit with this message?",
			Default: true,
		},
		store: func(r *record, a Answer) { r.Confirm = a.Yes },
	}
}

func noStagedChangesQuestion() Question {
	return Question{
		Kind:    KindConfirm,
		Name:    "commitWithoutStaged",
		Message: "No staged changes detected. Commit anyway?",
	}
}
