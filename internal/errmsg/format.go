// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Navigation
	OpViewSelect Op = "open view"
	OpViewChild  Op = "open item"
	OpViewBack   Op = "go back"

	// Library operations
	OpLibraryScan Op = "scan library"
	OpLibraryLoad Op = "load library"
	OpRowsLoad    Op = "load view contents"

	// Radio operations
	OpRadioSave   Op = "save radio"
	OpRadioDelete Op = "delete radio"

	// Track metadata
	OpTrackSave Op = "save track metadata"

	// File operations
	OpFolderLoad Op = "load folder"
	OpLyricsLoad Op = "load lyrics"

	// State
	OpStateLoad Op = "load saved state"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
