package leads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		maxLen   int
		fallback string
		want     string
	}{
		{"trims whitespace", "  hello  ", 10, "", "hello"},
		{"empty uses fallback", "", 10, "website", "website"},
		{"whitespace only uses fallback", "   \t\n ", 10, "home", "home"},
		{"empty without fallback", "", 10, "", ""},
		{"truncates to max length", "abcdefghij", 4, "", "abcd"},
		{"truncation trims stranded space", "ab c", 3, "", "ab"},
		{"zero max length", "abc", 0, "", ""},
		{"zero max length bounds fallback too", "abc", 0, "fb", ""},
		{"fallback truncated to max length", "", 2, "website", "we"},
		{"whitespace fallback collapses", "", 10, "   ", ""},
		{"multibyte runes survive truncation", "héllö wörld", 5, "", "héllö"},
		{"short value unchanged", "ok", 10, "", "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.raw, tt.maxLen, tt.fallback))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "   ", "hello", "  padded  ", "ab c", "a b c d e f",
		strings.Repeat("x", 500), "héllö wörld", "line\nbreak",
	}
	for _, in := range inputs {
		for _, maxLen := range []int{0, 1, 3, 10, 100} {
			once := sanitize(in, maxLen, "fb")
			twice := sanitize(once, maxLen, "fb")
			assert.Equal(t, once, twice, "sanitize not idempotent for %q maxLen=%d", in, maxLen)
		}
	}
}

func TestSanitizeLeadBoundsFields(t *testing.T) {
	long := strings.Repeat("z", 5000)
	lead := Sanitize(Submission{
		Source:      long,
		Page:        long,
		Name:        long,
		Company:     long,
		Email:       long,
		Phone:       long,
		Requirement: long,
		Message:     long,
		Website:     long,
	})

	assert.LessOrEqual(t, len([]rune(lead.Source)), maxSourceLen)
	assert.LessOrEqual(t, len([]rune(lead.Page)), maxPageLen)
	assert.LessOrEqual(t, len([]rune(lead.Name)), maxNameLen)
	assert.LessOrEqual(t, len([]rune(lead.Company)), maxCompanyLen)
	assert.LessOrEqual(t, len([]rune(lead.Email)), maxEmailLen)
	assert.LessOrEqual(t, len([]rune(lead.Phone)), maxPhoneLen)
	assert.LessOrEqual(t, len([]rune(lead.Requirement)), maxRequirementLen)
	assert.LessOrEqual(t, len([]rune(lead.Message)), maxMessageLen)
	assert.LessOrEqual(t, len([]rune(lead.honeypot)), maxHoneypotLen)
}

func TestSanitizeLeadDefaultsAndLowercasing(t *testing.T) {
	lead := Sanitize(Submission{
		Name:  "Jane",
		Email: "Jane.Doe@Example.COM",
	})
	assert.Equal(t, "website", lead.Source)
	assert.Equal(t, "home", lead.Page)
	assert.Equal(t, "jane.doe@example.com", lead.Email)
	assert.Equal(t, "", lead.Company)
}
