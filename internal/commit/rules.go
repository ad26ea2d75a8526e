package commit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxSubjectLength is the longest subject accepted, counted in characters.
const DefaultMaxSubjectLength = 72

var (
	ErrEmptySubject          = errors.New("subject is required")
	ErrSubjectTrailingPeriod = errors.New("subject must not end with a period")
	ErrSubjectTooLong        = errors.New("subject is too long")
	ErrEmptyBreaking         = errors.New("breaking change description is required")
)

// ValidateSubject checks a raw subject line against the header rules.
// A maxLen <= 0 selects DefaultMaxSubjectLength.
func ValidateSubject(raw string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxSubjectLength
	}

	subject := strings.TrimSpace(raw)
	switch {
	case subject == "":
		return ErrEmptySubject
	case strings.HasSuffix(subject, "."):
		return ErrSubjectTrailingPeriod
	case utf8.RuneCountInString(subject) > maxLen:
		return fmt.Errorf("%w: %d characters, at most %d allowed",
			ErrSubjectTooLong, utf8.RuneCountInString(subject), maxLen)
	}
	return nil
}

// NormalizeSubject trims the subject and swaps double quotes for single quotes.
func NormalizeSubject(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), `"`, "'")
}

// ValidateBreakingDescription rejects a blank breaking-change description.
func ValidateBreakingDescription(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyBreaking
	}
	return nil
}

// Trim normalizes optional free text; whitespace-only input becomes absent.
func Trim(raw string) string {
	return strings.TrimSpace(raw)
}
