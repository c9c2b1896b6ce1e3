// Package site is the key/value content store behind the public website:
// dotted keys like "hero.title" mapped to strings, persisted as rows of a
// spreadsheet tab and overlaid on shipped defaults.
package site

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/regenplastics/leads-platform/internal/sheets"
	"github.com/regenplastics/leads-platform/pkg/logging"
)

var siteHeader = []string{"Key", "Value"}

// ErrBadKey is returned for empty or malformed content keys.
var ErrBadKey = errors.New("site: content key is required")

// Store reads and writes content rows on a spreadsheet tab.
type Store struct {
	api    sheets.API
	sheet  string
	logger *logging.Logger

	mu      sync.Mutex
	ensured bool
}

// NewStore creates a content store on the named tab.
func NewStore(api sheets.API, sheet string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		api:    api,
		sheet:  sheet,
		logger: logger,
	}
}

// Get returns the full content map: defaults overlaid with stored overrides.
func (s *Store) Get(ctx context.Context) (map[string]string, error) {
	if err := s.ensureHeader(ctx); err != nil {
		return nil, err
	}
	rows, err := s.api.ReadRows(ctx, s.sheet)
	if err != nil {
		return nil, fmt.Errorf("site: read content: %w", err)
	}

	content := make(map[string]string, len(Defaults)+len(rows))
	for k, v := range Defaults {
		content[k] = v
	}
	for i, row := range rows {
		if i == 0 || len(row) < 1 {
			continue // header
		}
		value := ""
		if len(row) > 1 {
			value = row[1]
		}
		content[row[0]] = value
	}
	return content, nil
}

// Update sets one content value. section may be empty when key is already
// dotted ("hero.title"); otherwise the stored key is section.key.
func (s *Store) Update(ctx context.Context, section, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrBadKey
	}
	full := key
	if section = strings.TrimSpace(section); section != "" {
		full = section + "." + key
	}

	if err := s.ensureHeader(ctx); err != nil {
		return err
	}
	rows, err := s.api.ReadRows(ctx, s.sheet)
	if err != nil {
		return fmt.Errorf("site: read content: %w", err)
	}
	for i, row := range rows {
		if i == 0 || len(row) < 1 {
			continue
		}
		if row[0] == full {
			if err := s.api.UpdateRow(ctx, s.sheet, i, []string{full, value}); err != nil {
				return fmt.Errorf("site: update %s: %w", full, err)
			}
			return nil
		}
	}
	if err := s.api.AppendRow(ctx, s.sheet, []string{full, value}); err != nil {
		return fmt.Errorf("site: append %s: %w", full, err)
	}
	s.logger.Info("site content updated", "key", full)
	return nil
}

func (s *Store) ensureHeader(ctx context.Context) error {
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
		if err := s.api.AppendRow(ctx, s.sheet, siteHeader); err != nil {
			return fmt.Errorf("site: write header: %w", err)
		}
	}
	s.ensured = true
	return nil
}
