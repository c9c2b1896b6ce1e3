package leads

import (
	"regexp"
	"strings"
)

var (
	linkPattern = regexp.MustCompile(`https?://`)
	spamTerms   = regexp.MustCompile(`(crypto|bitcoin|forex|casino|viagra|loan|seo|backlink|telegram|whatsapp\s*group|earn\s*money)`)
)

// looksLikeSpam flags text carrying link floods, known spam vocabulary, or a
// single character repeated nine or more times in a row.
func looksLikeSpam(text string) bool {
	t := strings.ToLower(text)
	if len(linkPattern.FindAllString(t, -1)) >= 3 {
		return true
	}
	if spamTerms.MatchString(t) {
		return true
	}
	return hasCharFlood(t, 9)
}

// hasCharFlood reports whether any rune repeats n or more times in a row.
// RE2 has no backreferences, so this cannot be part of the patterns above.
func hasCharFlood(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// validateSpam applies the heuristics twice: to the free-text message alone
// and to the joined contact fields, each with its own rejection.
func validateSpam(lead CleanLead) error {
	if lead.Message != "" && looksLikeSpam(lead.Message) {
		return ErrMessageSpam
	}
	if looksLikeSpam(strings.Join([]string{lead.Name, lead.Company, lead.Requirement}, " ")) {
		return ErrContactSpam
	}
	return nil
}
