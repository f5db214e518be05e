package viewnav

import "errors"

var (
	// ErrUnderflow is returned when popping would leave the stack empty.
	ErrUnderflow = errors.New("view stack underflow")
	// ErrIndexOutOfRange is returned for a top-level view outside the catalog.
	ErrIndexOutOfRange = errors.New("view index out of range")
)

// Stack holds the active views. The bottom is a top-level view and the top
// is the view on screen.
type Stack struct {
	items []Config
}

// NewStack returns a stack seeded with root.
func NewStack(root Config) Stack {
	return Stack{items: []Config{root}}
}

// Push appends c.
func (s *Stack) Push(c Config) {
	s.items = append(s.items, c)
}

// Pop removes the top. The root is never popped.
func (s *Stack) Pop() (Config, error) {
	if len(s.items) <= 1 {
		return Config{}, ErrUnderflow
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Top returns the current view, or the zero Config on an empty stack.
func (s *Stack) Top() Config {
	if len(s.items) == 0 {
		return Config{}
	}
	return s.items[len(s.items)-1]
}

// Below returns the view under the top.
func (s *Stack) Below() (Config, bool) {
	if len(s.items) < 2 {
		return Config{}, false
	}
	return s.items[len(s.items)-2], true
}

// Len returns the number of views.
func (s *Stack) Len() int { return len(s.items) }

// clear empties the stack. Callers push a new root right after.
func (s *Stack) clear() {
	s.items = s.items[:0]
}

// Snapshot returns a copy of the views, bottom first.
func (s *Stack) Snapshot() []Config {
	out := make([]Config, len(s.items))
	copy(out, s.items)
	return out
}
