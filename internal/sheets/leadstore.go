package sheets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/regenplastics/leads-platform/pkg/logging"
)

// LeadRecord is one persisted lead row. Rows are append-only; nothing in this
// subsystem updates or deletes them.
type LeadRecord struct {
	Timestamp   time.Time
	Source      string
	Page        string
	Name        string
	Company     string
	Email       string
	Phone       string
	Requirement string
	Message     string
}

var leadHeader = []string{
	"Timestamp",
	"Source",
	"Page",
	"Name",
	"Company",
	"Email",
	"Phone",
	"Requirement",
	"Message",
}

// LeadStore appends accepted leads to a single tab, writing the header row
// the first time the tab is used.
type LeadStore struct {
	api    API
	sheet  string
	logger *logging.Logger

	mu      sync.Mutex
	ensured bool
}

// NewLeadStore creates a store writing to the named tab.
func NewLeadStore(api API, sheet string, logger *logging.Logger) *LeadStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadStore{
		api:    api,
		sheet:  sheet,
		logger: logger,
	}
}

// Append writes one lead row, creating the tab and header first if needed.
func (s *LeadStore) Append(ctx context.Context, rec LeadRecord) error {
	if err := s.ensureHeader(ctx); err != nil {
		return err
	}

	row := []string{
		rec.Timestamp.UTC().Format(time.RFC3339),
		rec.Source,
		rec.Page,
		rec.Name,
		rec.Company,
		rec.Email,
		rec.Phone,
		rec.Requirement,
		rec.Message,
	}
	if err := s.api.AppendRow(ctx, s.sheet, row); err != nil {
		return fmt.Errorf("sheets: append lead: %w", err)
	}
	return nil
}

// ensureHeader lazily creates the tab with its header row. The check runs
// once per process; the mutex keeps concurrent first writes from racing the
// header append.
func (s *LeadStore) ensureHeader(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ensured {
		return nil
	}
	if err := s.api.EnsureSheet(ctx, s.sheet); err != nil {
		return err
	}
	empty, err := s.api.IsEmpty(ctx, s.sheet)
	if err != nil {
		return err
	}
	if empty {
		if err := s.api.AppendRow(ctx, s.sheet, leadHeader); err != nil {
			return fmt.Errorf("sheets: write header: %w", err)
		}
		s.logger.Info("initialized leads sheet", "sheet", s.sheet)
	}
	s.ensured = true
	return nil
}
