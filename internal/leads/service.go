package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/regenplastics/leads-platform/internal/observability/metrics"
	"github.com/regenplastics/leads-platform/internal/sheets"
	"github.com/regenplastics/leads-platform/pkg/logging"
)

// Admitter decides whether a validated lead may pass the shared rate-limit
// and deduplication state.
type Admitter interface {
	Admit(ctx context.Context, name, email, phone, message string) error
}

// Store is the durable append-only destination for accepted leads.
type Store interface {
	Append(ctx context.Context, rec sheets.LeadRecord) error
}

// Notifier is told about accepted leads. Implementations must not fail the
// submission; delivery problems are theirs to log.
type Notifier interface {
	LeadAccepted(ctx context.Context, lead CleanLead)
}

// Options bounds the timing guard.
type Options struct {
	MinFillTime time.Duration
	MaxFormAge  time.Duration
}

// DefaultOptions mirrors the production thresholds: 3s minimum fill time,
// 2h maximum form age.
func DefaultOptions() Options {
	return Options{
		MinFillTime: 3 * time.Second,
		MaxFormAge:  2 * time.Hour,
	}
}

// Service runs the intake pipeline: sanitize, validate, rate-limit, persist.
// Stages run strictly in order and any rejection short-circuits the rest.
type Service struct {
	limiter  Admitter
	store    Store
	notifier Notifier
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
	opts     Options
	now      func() time.Time
}

// NewService creates the intake service. limiter and store are required for
// acceptance; notifier and metrics may be nil.
func NewService(limiter Admitter, store Store, notifier Notifier, m *metrics.LeadMetrics, logger *logging.Logger, opts Options) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.MinFillTime == 0 && opts.MaxFormAge == 0 {
		opts = DefaultOptions()
	}
	return &Service{
		limiter:  limiter,
		store:    store,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
	}
}

// Submit takes a raw submission through the full pipeline and returns the
// acceptance time. A *Rejection error carries the caller-facing message; any
// other error is an internal failure.
func (s *Service) Submit(ctx context.Context, sub Submission) (time.Time, error) {
	// Configuration is checked before any other work, so a misconfigured
	// deployment does not burn rate quota or plant dup fingerprints that
	// would reject the caller's retry after the operator fixes it.
	if s.store == nil {
		s.metrics.ObserveOutcome("error")
		return time.Time{}, ErrStorageNotConfigured
	}

	lead := Sanitize(sub)

	if err := s.validate(lead); err != nil {
		s.observeReject(err)
		return time.Time{}, err
	}

	if err := s.limiter.Admit(ctx, lead.Name, lead.Email, lead.Phone, lead.Message); err != nil {
		if !isReject(err) {
			// Lock timeouts and cache failures are hard errors; the limit
			// check is never silently skipped.
			s.metrics.ObserveOutcome("error")
			return time.Time{}, fmt.Errorf("leads: rate limit check: %w", err)
		}
		s.observeReject(err)
		return time.Time{}, err
	}

	accepted := s.now().UTC()
	start := time.Now()
	err := s.store.Append(ctx, sheets.LeadRecord{
		Timestamp:   accepted,
		Source:      lead.Source,
		Page:        lead.Page,
		Name:        lead.Name,
		Company:     lead.Company,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Requirement: lead.Requirement,
		Message:     lead.Message,
	})
	s.metrics.ObserveAppendLatency(time.Since(start).Seconds())
	if err != nil {
		s.metrics.ObserveOutcome("error")
		return time.Time{}, fmt.Errorf("leads: append row: %w", err)
	}

	s.metrics.ObserveOutcome("accepted")
	s.logger.Info("lead accepted", "source", lead.Source, "page", lead.Page, "email", lead.Email)

	if s.notifier != nil {
		s.notifier.LeadAccepted(ctx, lead)
	}
	return accepted, nil
}

// validate runs the non-shared pipeline stages in order: structural checks,
// honeypot and timing guard, spam heuristics, disposable-domain filter.
func (s *Service) validate(lead CleanLead) error {
	if err := validateStructure(lead); err != nil {
		return err
	}
	if err := validateBot(lead, s.opts.MinFillTime, s.opts.MaxFormAge); err != nil {
		return err
	}
	if err := validateSpam(lead); err != nil {
		return err
	}
	if isDisposableEmail(lead.Email) {
		return ErrDisposableEmail
	}
	return nil
}

func (s *Service) observeReject(err error) {
	s.metrics.ObserveOutcome("rejected")
	var rr interface{ RejectReason() string }
	if errors.As(err, &rr) {
		s.metrics.ObserveRejection(rr.RejectReason())
	}
}

func isReject(err error) bool {
	var rr interface{ RejectReason() string }
	return errors.As(err, &rr)
}
