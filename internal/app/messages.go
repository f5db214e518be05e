package app

import "github.com/llehouerou/crate/internal/library"

// startMsg mounts the start view once the program runs.
type startMsg struct{}

// panesLoadedMsg carries the views fetched for one batch of activations,
// in activation order.
type panesLoadedMsg struct {
	panes []Pane
}

// ScanProgressMsg reports library scan progress.
type ScanProgressMsg library.ScanProgress

// ScanCompleteMsg is sent when a library scan ends.
type ScanCompleteMsg struct {
	Err error
}
