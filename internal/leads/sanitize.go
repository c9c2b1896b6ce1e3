package leads

import "strings"

// sanitize bounds raw to maxLen runes and substitutes fallback when nothing
// survives. The fallback goes through the same bounding, so the output is
// always a fixed point: sanitizing it again changes nothing.
func sanitize(raw string, maxLen int, fallback string) string {
	if s := bound(raw, maxLen); s != "" {
		return s
	}
	return bound(fallback, maxLen)
}

// bound trims whitespace and truncates to maxLen runes. Truncation can strand
// trailing whitespace mid-word, so the result is trimmed again.
func bound(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxLen {
		s = strings.TrimSpace(string(r[:maxLen]))
	}
	return s
}
