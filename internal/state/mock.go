package state

import "sync"

// Mock is a test double for Manager. Saves apply immediately.
type Mock struct {
	mu     sync.Mutex
	view   *ViewState
	saves  int
	closed bool
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

// NewMockWithView creates a mock that starts with a saved view.
func NewMockWithView(v ViewState) *Mock {
	return &Mock{view: &v}
}

func (m *Mock) SaveView(state ViewState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view = &state
	m.saves++
}

func (m *Mock) GetView() (*ViewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.view == nil {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	v := *m.view
	return &v, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Saves returns how many times SaveView was called.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
