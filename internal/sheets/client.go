package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/regenplastics/leads-platform/pkg/logging"
)

// GoogleClient implements API against a real Google spreadsheet.
type GoogleClient struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	logger        *logging.Logger
}

// NewGoogleClient builds a Sheets client for the given spreadsheet using
// service-account credentials JSON.
func NewGoogleClient(ctx context.Context, spreadsheetID, credentialsJSON string, logger *logging.Logger) (*GoogleClient, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &GoogleClient{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

// EnsureSheet creates the named tab if the spreadsheet does not have it yet.
func (c *GoogleClient) EnsureSheet(ctx context.Context, title string) error {
	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: get spreadsheet: %w", err)
	}
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return nil
		}
	}

	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: title},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: add sheet %s: %w", title, err)
	}
	c.logger.Info("created sheet tab", "title", title)
	return nil
}

// IsEmpty reports whether the tab has no rows.
func (c *GoogleClient) IsEmpty(ctx context.Context, title string) (bool, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, title+"!A1:A1").Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("sheets: read %s: %w", title, err)
	}
	return len(resp.Values) == 0, nil
}

// AppendRow appends one row after the tab's last row.
func (c *GoogleClient) AppendRow(ctx context.Context, title string, row []string) error {
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{toInterfaces(row)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, title, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: append to %s: %w", title, err)
	}
	return nil
}

// ReadRows returns every row of the tab as strings.
func (c *GoogleClient) ReadRows(ctx context.Context, title string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, title).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read %s: %w", title, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UpdateRow overwrites the row at zero-based index.
func (c *GoogleClient) UpdateRow(ctx context.Context, title string, index int, row []string) error {
	rangeRef := fmt.Sprintf("%s!A%d", title, index+1)
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{toInterfaces(row)}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rangeRef, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: update %s row %d: %w", title, index, err)
	}
	return nil
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
