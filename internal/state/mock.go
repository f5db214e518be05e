// internal/state/mock.go
package state

import (
	"database/sql"
	"sync"
)

// Mock is a test double for Manager. Saves are recorded immediately.
type Mock struct {
	mu       sync.Mutex
	navState *NavigationState
	saved    []NavigationState
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveNavigation(state NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, state)
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.navState, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.navState = state
}

// Saved returns every state passed to SaveNavigation, oldest first.
func (m *Mock) Saved() []NavigationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]NavigationState(nil), m.saved...)
}

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
