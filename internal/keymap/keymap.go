package keymap

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "navigator", "library", "radios"
}

// Key returns b as a bubbles binding, with its first key as help text.
func (b Binding) Key() key.Binding {
	help := ""
	if len(b.Keys) > 0 {
		help = b.Keys[0]
	}
	return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(help, b.Description))
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionRescan, []string{"R"}, "Rescan library", "global"},
	{ActionNextView, []string{"tab"}, "Next view", "global"},
	{ActionPrevView, []string{"shift+tab"}, "Previous view", "global"},

	// Navigator
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "navigator"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "navigator"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "navigator"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "navigator"},
	{ActionOpen, []string{"enter", "l", "right"}, "Open", "navigator"},
	{ActionBack, []string{"backspace", "h", "left"}, "Back", "navigator"},

	// Library rows
	{ActionInfo, []string{"i"}, "Track info", "library"},
	{ActionRateUp, []string{"+", "="}, "Rate up", "library"},
	{ActionRateDown, []string{"-"}, "Rate down", "library"},
	{ActionMarkPlayed, []string{"p"}, "Mark as played", "library"},

	// Radios
	{ActionDelete, []string{"d", "delete"}, "Delete radio", "radios"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ViewIndex maps the digit keys 1-9 to a zero-based menu position.
func ViewIndex(k string) (int, bool) {
	if len(k) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(k)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
