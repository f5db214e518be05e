// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionRescan Action = "rescan"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionOpen      Action = "open"
	ActionBack      Action = "back"
	ActionNextView  Action = "next_view"
	ActionPrevView  Action = "prev_view"

	// Row actions
	ActionInfo       Action = "info"        // i - metadata panel
	ActionRateUp     Action = "rate_up"     // +
	ActionRateDown   Action = "rate_down"   // -
	ActionMarkPlayed Action = "mark_played" // p
	ActionDelete     Action = "delete"      // d - radios only
)
