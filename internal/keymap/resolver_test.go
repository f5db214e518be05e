//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionOpen, []string{"enter"}, "Open", "navigator"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
		{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"enter", ActionOpen},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"down", ActionMoveDown},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_ResolveMsg(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		msg      tea.KeyMsg
		expected Action
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionOpen},
		{tea.KeyMsg{Type: tea.KeyBackspace}, ActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}, ActionRateUp},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := r.ResolveMsg(tt.msg); got != tt.expected {
				t.Errorf("ResolveMsg(%q) = %q, want %q", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestResolver_FirstBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionJumpStart, []string{"g"}, "First", "navigator"},
		{ActionRescan, []string{"g"}, "Rescan", "global"},
	})

	if got := r.Resolve("g"); got != ActionJumpStart {
		t.Errorf("Resolve(g) = %q, want %q", got, ActionJumpStart)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	})

	if keys := r.KeysFor(ActionQuit); !slices.Equal(keys, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v", keys)
	}
	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	bindings := []Binding{
		{ActionDelete, []string{"d", "delete"}, "Delete", "radios"},
		{ActionDelete, []string{"d"}, "Delete", "library"},
	}

	keys := NewResolver(bindings).KeysFor(ActionDelete)

	if !slices.Equal(keys, []string{"d", "delete"}) {
		t.Errorf("KeysFor(delete) = %v, want [d delete]", keys)
	}
}

func TestResolver_NoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"all duplicates", []string{"a", "a", "a"}, []string{"a"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := dedupe(tt.input); !slices.Equal(result, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
