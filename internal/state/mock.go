package state

// Mock is a test double for Manager.
type Mock struct {
	page    *PageState
	history []HistoryEntry
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetPage() (*PageState, error) {
	return m.page, nil
}

func (m *Mock) SavePage(state PageState) {
	m.page = &state
}

func (m *Mock) AddHistory(path, title string) error {
	for i, e := range m.history {
		if e.Path == path {
			m.history = append(m.history[:i], m.history[i+1:]...)
			break
		}
	}
	m.history = append(m.history, HistoryEntry{Path: path, Title: title, Visits: 1})
	return nil
}

func (m *Mock) History(limit int) ([]HistoryEntry, error) {
	if limit >= 0 && limit < len(m.history) {
		return m.history[len(m.history)-limit:], nil
	}
	return m.history, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) IsClosed() bool { return m.closed }

var _ Interface = (*Mock)(nil)
