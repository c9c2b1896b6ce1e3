// Package sheets treats a spreadsheet as the durable row store behind the
// platform: an append-only leads table and a key/value content table, each on
// its own tab, lazily created on first use.
package sheets

import "context"

// API is the minimal tab-and-rows surface the stores need. The Google
// implementation talks to the Sheets API; the in-memory one backs tests and
// credential-less development.
type API interface {
	// EnsureSheet creates the named tab if it does not exist.
	EnsureSheet(ctx context.Context, title string) error

	// IsEmpty reports whether the tab has no rows at all.
	IsEmpty(ctx context.Context, title string) (bool, error)

	// AppendRow appends one row after the last row of the tab.
	AppendRow(ctx context.Context, title string, row []string) error

	// ReadRows returns every row of the tab.
	ReadRows(ctx context.Context, title string) ([][]string, error)

	// UpdateRow overwrites the row at zero-based index.
	UpdateRow(ctx context.Context, title string, index int, row []string) error
}
