package commit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "add login flow"},
		{name: "surrounding whitespace", input: "  add login flow  "},
		{name: "empty", input: "", wantErr: ErrEmptySubject},
		{name: "whitespace only", input: "   ", wantErr: ErrEmptySubject},
		{name: "trailing period", input: "handle empty input.", wantErr: ErrSubjectTrailingPeriod},
		{name: "trailing period before spaces", input: "done.  ", wantErr: ErrSubjectTrailingPeriod},
		{name: "period inside", input: "bump to v1.2", wantErr: nil},
		{name: "exactly 72", input: strings.Repeat("a", 72)},
		{name: "73 characters", input: strings.Repeat("a", 73), wantErr: ErrSubjectTooLong},
		{name: "72 after trim", input: "  " + strings.Repeat("a", 72) + "  "},
		{name: "multibyte counted as characters", input: strings.Repeat("é", 72)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubject(tt.input, 0)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSubject_CustomLimit(t *testing.T) {
	assert.NoError(t, ValidateSubject("short", 5))
	assert.ErrorIs(t, ValidateSubject("longer", 5), ErrSubjectTooLong)
}

func TestNormalizeSubject(t *testing.T) {
	assert.Equal(t, "support 'quoted' names", NormalizeSubject(`  support "quoted" names `))
	assert.Equal(t, "plain", NormalizeSubject("plain"))
}

func TestValidateBreakingDescription(t *testing.T) {
	assert.NoError(t, ValidateBreakingDescription("removes the v1 API"))
	assert.ErrorIs(t, ValidateBreakingDescription(""), ErrEmptyBreaking)
	assert.ErrorIs(t, ValidateBreakingDescription(" \n\t"), ErrEmptyBreaking)
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "", Trim("   \n"))
	assert.Equal(t, "api", Trim(" api "))
}
