// Package commit holds the Conventional Commits answer record, its field rules and the
// assembler that renders it into a commit message.
package commit

import "strings"

// BreakingChangeToken prefixes the breaking-change footer.
const BreakingChangeToken = "BREAKING CHANGE"

// Answers is the record collected by one run of the prompt flow.
// Optional fields are empty when absent.
type Answers struct {
	Type                string
	Scope               string
	Subject             string
	Body                string
	Breaking            bool
	BreakingDescription string
	Confirm             bool
}

// Header renders `type[(scope)][!]: subject`.
func (a Answers) Header() string {
	var b strings.Builder
	b.WriteString(a.Type)
	if a.Scope != "" {
		b.WriteString("(" + a.Scope + ")")
	}
	if a.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(a.Subject)
	return b.String()
}

// Assemble renders the answers into a commit message. Sections are separated by exactly
// one blank line and absent sections leave no trace.
func Assemble(a Answers) string {
	sections := []string{a.Header()}
	if a.Body != "" {
		sections = append(sections, a.Body)
	}
	if a.Breaking && a.BreakingDescription != "" {
		sections = append(sections, BreakingChangeToken+": "+a.BreakingDescription)
	}
	return strings.Join(sections, "\n\n")
}
