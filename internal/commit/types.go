package commit

import (
	"strings"

	"github.com/samzong/gitcz/internal/stringsutil"
)

// typeDescriptions describes the commit types gitcz knows about.
var typeDescriptions = map[string]string{
	"build":    "Changes that affect the build system or external dependencies",
	"chore":    "Other changes that don't modify src or test files",
	"ci":       "Changes to CI configuration files and scripts",
	"docs":     "Documentation only changes",
	"feat":     "A new feature",
	"fix":      "A bug fix",
	"perf":     "A code change that improves performance",
	"refactor": "A code change that neither fixes a bug nor adds a feature",
	"revert":   "Reverts a previous commit",
	"style":    "Changes that do not affect the meaning of the code",
	"test":     "Adding missing tests or correcting existing tests",
}

var defaultTypes = []string{
	"build", "chore", "ci", "docs", "feat", "fix", "perf", "refactor", "style", "test",
}

// DefaultTypes returns a copy of the default commit type list.
func DefaultTypes() []string {
	return append([]string(nil), defaultTypes...)
}

// NormalizeTypes lowercases and trims the configured types, dropping blanks and
// duplicates. An empty result falls back to DefaultTypes.
func NormalizeTypes(types []string) []string {
	cleaned := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}

	cleaned = stringsutil.UniqueStrings(cleaned)
	if len(cleaned) == 0 {
		return DefaultTypes()
	}
	return cleaned
}

// DescribeType returns the description for a known type, or "".
func DescribeType(commitType string) string {
	return typeDescriptions[strings.ToLower(commitType)]
}

// Choice is one entry of the type selection list.
type Choice struct {
	Label string
	Value string
}

// TypeChoices builds labelled choices, padding names so descriptions line up.
func TypeChoices(types []string) []Choice {
	width := 0
	for _, t := range types {
		width = max(width, len(t))
	}

	choices := make([]Choice, 0, len(types))
	for _, t := range types {
		label := t
		if desc := DescribeType(t); desc != "" {
			label = t + ":" + strings.Repeat(" ", width-len(t)+1) + desc
		}
		choices = append(choices, Choice{Label: label, Value: t})
	}
	return choices
}
