package leads

import "errors"

// Rejection is a structured refusal of a submission. Message is the exact
// string returned to the caller; Reason is a stable label for logs and
// metrics.
type Rejection struct {
	Reason  string
	Message string
}

func (r *Rejection) Error() string { return r.Message }

// RejectReason satisfies the shared reject-reason interface used by handlers.
func (r *Rejection) RejectReason() string { return r.Reason }

var (
	// ErrMissingRequired is returned when name or email is empty after sanitization.
	ErrMissingRequired = &Rejection{Reason: "missing_required", Message: "Name and Email are required"}

	// ErrBadEmailFormat is returned when the email fails the permissive syntax check.
	ErrBadEmailFormat = &Rejection{Reason: "bad_email_format", Message: "Invalid email format"}

	// ErrHoneypot is returned when the hidden honeypot field carries a value.
	ErrHoneypot = &Rejection{Reason: "honeypot_triggered", Message: "Rejected as spam"}

	// ErrMissingTiming is returned when the client timing metadata is absent or malformed.
	ErrMissingTiming = &Rejection{Reason: "missing_timing_metadata", Message: "Missing form metadata"}

	// ErrTooFast is returned for superhuman fill times.
	ErrTooFast = &Rejection{Reason: "too_fast", Message: "Submitted too quickly"}

	// ErrFormExpired is returned for stale or replayed form state.
	ErrFormExpired = &Rejection{Reason: "form_expired", Message: "Form expired. Please refresh and submit again."}

	// ErrMessageSpam is returned when the free-text message trips the spam heuristics.
	ErrMessageSpam = &Rejection{Reason: "message_spam", Message: "Message failed spam checks"}

	// ErrContactSpam is returned when the name/company/requirement fields trip them.
	ErrContactSpam = &Rejection{Reason: "contact_spam", Message: "Submission failed spam checks"}

	// ErrDisposableEmail is returned for known throwaway-email domains.
	ErrDisposableEmail = &Rejection{Reason: "disposable_email", Message: "Please use your business email address"}
)

// ErrStorageNotConfigured is returned when no spreadsheet id is configured.
// It is a configuration failure, not a validation rejection.
var ErrStorageNotConfigured = errors.New("SHEET_ID not set")
