package leads

import "strings"

// Field length ceilings enforced at sanitization time.
const (
	maxSourceLen      = 40
	maxPageLen        = 120
	maxNameLen        = 120
	maxCompanyLen     = 160
	maxEmailLen       = 254
	maxPhoneLen       = 40
	maxRequirementLen = 300
	maxMessageLen     = 2500
	maxHoneypotLen    = 200
)

// Submission is the raw, untrusted request body of the public intake form.
// Every field is attacker-controlled; nothing here is validated yet.
type Submission struct {
	Key         string `json:"key"`
	Source      string `json:"source"`
	Page        string `json:"page"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Requirement string `json:"requirement"`
	Message     string `json:"message"`

	// Website is the honeypot field. Humans never see it; naive bots fill it.
	Website string `json:"website"`

	// Epoch milliseconds reported by the client: when the form became
	// visible and when it was submitted.
	FormStartedAt float64 `json:"formStartedAt"`
	SubmitTs      float64 `json:"submitTs"`
}

// CleanLead is the sanitized value object derived from a Submission. String
// fields never exceed their declared maximum and are never absent (empty
// string is the floor). Honeypot and timing metadata travel alongside but are
// never persisted.
type CleanLead struct {
	Source      string
	Page        string
	Name        string
	Company     string
	Email       string
	Phone       string
	Requirement string
	Message     string

	honeypot      string
	formStartedAt float64
	submitTs      float64
}

// Sanitize derives a CleanLead from a raw submission. It trims, truncates and
// defaults every field; it never fails.
func Sanitize(sub Submission) CleanLead {
	return CleanLead{
		Source:      sanitize(sub.Source, maxSourceLen, "website"),
		Page:        sanitize(sub.Page, maxPageLen, "home"),
		Name:        sanitize(sub.Name, maxNameLen, ""),
		Company:     sanitize(sub.Company, maxCompanyLen, ""),
		Email:       strings.ToLower(sanitize(sub.Email, maxEmailLen, "")),
		Phone:       sanitize(sub.Phone, maxPhoneLen, ""),
		Requirement: sanitize(sub.Requirement, maxRequirementLen, ""),
		Message:     sanitize(sub.Message, maxMessageLen, ""),

		honeypot:      sanitize(sub.Website, maxHoneypotLen, ""),
		formStartedAt: sub.FormStartedAt,
		submitTs:      sub.SubmitTs,
	}
}
