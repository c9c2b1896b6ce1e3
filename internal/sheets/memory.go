package sheets

import (
	"context"
	"fmt"
	"sync"
)

// Memory implements API in process. It backs tests and local development
// without Google credentials; semantics mirror the Google client.
type Memory struct {
	mu   sync.Mutex
	tabs map[string][][]string
}

// NewMemory creates an empty in-memory spreadsheet.
func NewMemory() *Memory {
	return &Memory{tabs: make(map[string][][]string)}
}

func (m *Memory) EnsureSheet(ctx context.Context, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tabs[title]; !ok {
		m.tabs[title] = nil
	}
	return nil
}

func (m *Memory) IsEmpty(ctx context.Context, title string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tabs[title]) == 0, nil
}

func (m *Memory) AppendRow(ctx context.Context, title string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tabs[title] = append(m.tabs[title], append([]string(nil), row...))
	return nil
}

func (m *Memory) ReadRows(ctx context.Context, title string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make([][]string, len(m.tabs[title]))
	for i, row := range m.tabs[title] {
		rows[i] = append([]string(nil), row...)
	}
	return rows, nil
}

func (m *Memory) UpdateRow(ctx context.Context, title string, index int, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.tabs[title]
	if index < 0 || index >= len(rows) {
		return fmt.Errorf("sheets: row %d out of range for %s", index, title)
	}
	rows[index] = append([]string(nil), row...)
	return nil
}

// Rows returns a copy of a tab's rows. Test helper.
func (m *Memory) Rows(title string) [][]string {
	rows, _ := m.ReadRows(context.Background(), title)
	return rows
}
