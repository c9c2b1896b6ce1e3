package leads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeSpam(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"clean text", "We need 40 MT of injection-grade rPP monthly.", false},
		{"two links pass", "See https://a.example and https://b.example", false},
		{"three links flagged", "https://a.example http://b.example https://c.example", true},
		{"casino keyword", "visit our casino", true},
		{"keyword case insensitive", "Best CRYPTO returns", true},
		{"whatsapp group with spaces", "join our whatsapp   group now", true},
		{"earn money", "earn money from home", true},
		{"nine repeated chars", "aaaaaaaaa", true},
		{"eight repeated chars pass", "aaaaaaaa", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeSpam(tt.text))
		})
	}
}

func TestValidateSpamDistinguishesFields(t *testing.T) {
	base := CleanLead{Name: "Jane", Company: "Acme", Requirement: "rPP granules"}

	t.Run("spam in message", func(t *testing.T) {
		lead := base
		lead.Message = "visit our casino " + strings.Repeat("!", 3)
		assert.ErrorIs(t, validateSpam(lead), ErrMessageSpam)
	})

	t.Run("spam in contact fields", func(t *testing.T) {
		lead := base
		lead.Company = "SEO Backlink Experts"
		lead.Message = "A perfectly reasonable message."
		assert.ErrorIs(t, validateSpam(lead), ErrContactSpam)
	})

	t.Run("clean submission", func(t *testing.T) {
		lead := base
		lead.Message = "Looking for consistent MFI batches."
		assert.NoError(t, validateSpam(lead))
	})

	t.Run("empty message skips message check", func(t *testing.T) {
		lead := base
		lead.Message = ""
		assert.NoError(t, validateSpam(lead))
	})
}
