package leads

import (
	"math"
	"regexp"
	"time"
)

// Permissive local@domain.tld shape: at least one char before the @, one
// between @ and the final dot, and two or more after it. No DNS or mailbox
// verification here.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// validateStructure enforces required fields and email syntax.
func validateStructure(lead CleanLead) error {
	if lead.Name == "" || lead.Email == "" {
		return ErrMissingRequired
	}
	if !emailRegex.MatchString(lead.Email) {
		return ErrBadEmailFormat
	}
	return nil
}

// validateBot checks the honeypot field and the client-reported interaction
// window. The timestamps are trusted input, so this is a deterrent against
// naive automation, not a security boundary.
func validateBot(lead CleanLead, minFill, maxAge time.Duration) error {
	if lead.honeypot != "" {
		return ErrHoneypot
	}
	if !isFiniteNonZero(lead.formStartedAt) || !isFiniteNonZero(lead.submitTs) {
		return ErrMissingTiming
	}
	delta := lead.submitTs - lead.formStartedAt
	if delta < float64(minFill.Milliseconds()) {
		return ErrTooFast
	}
	if delta > float64(maxAge.Milliseconds()) {
		return ErrFormExpired
	}
	return nil
}

func isFiniteNonZero(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
