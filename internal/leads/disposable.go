package leads

import "strings"

var disposableDomains = map[string]struct{}{
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"10minutemail.com":  {},
	"tempmail.com":      {},
	"yopmail.com":       {},
}

// isDisposableEmail reports whether the address belongs to a known
// throwaway-email provider. Unknown domains pass.
func isDisposableEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	_, blocked := disposableDomains[domain]
	return blocked
}
