package notify

import (
	"context"
	"fmt"

	"github.com/regenplastics/leads-platform/internal/leads"
	"github.com/regenplastics/leads-platform/pkg/logging"
)

// Service emails the operations inbox about accepted leads. Delivery is
// best-effort: failures are logged and never fail the submission.
type Service struct {
	email  EmailSender
	to     string
	logger *logging.Logger
}

// NewService creates the notification service. Returns nil when no sender or
// destination address is configured.
func NewService(email EmailSender, to string, logger *logging.Logger) *Service {
	if email == nil || to == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		email:  email,
		to:     to,
		logger: logger,
	}
}

// LeadAccepted sends the new-lead email.
func (s *Service) LeadAccepted(ctx context.Context, lead leads.CleanLead) {
	if s == nil {
		return
	}

	body := fmt.Sprintf(
		"New website lead\n\nName: %s\nCompany: %s\nEmail: %s\nPhone: %s\nRequirement: %s\nSource: %s / %s\n\n%s\n",
		lead.Name, lead.Company, lead.Email, lead.Phone, lead.Requirement, lead.Source, lead.Page, lead.Message,
	)
	msg := EmailMessage{
		To:      s.to,
		ToName:  "Sales",
		Subject: fmt.Sprintf("New lead: %s", lead.Name),
		Body:    body,
	}
	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("lead notification failed", "error", err, "email", lead.Email)
	}
}
