package app

import (
	"github.com/llehouerou/crate/internal/filebrowser"
	"github.com/llehouerou/crate/internal/library"
	"github.com/llehouerou/crate/internal/viewnav"
)

// Pane is a mounted view.
type Pane struct {
	Kind     viewnav.ViewKind
	Depth    int
	Title    string
	Subtitle string
	Image    string
	Grid     bool
	CanRate  bool

	Rows []library.Row
	// Entries backs Rows for the file browser, index for index.
	Entries []filebrowser.Entry
	IsFiles bool

	Cursor int
	Offset int
	// Empty is shown when Rows is empty.
	Empty string
	Err   string
}

// Selected returns the row under the cursor.
func (p *Pane) Selected() (library.Row, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Rows) {
		return library.Row{}, false
	}
	return p.Rows[p.Cursor], true
}

// SelectedEntry returns the file entry under the cursor.
func (p *Pane) SelectedEntry() (filebrowser.Entry, bool) {
	if !p.IsFiles || p.Cursor < 0 || p.Cursor >= len(p.Entries) {
		return filebrowser.Entry{}, false
	}
	return p.Entries[p.Cursor], true
}

// Move shifts the cursor by delta, clamped to the rows.
func (p *Pane) Move(delta int) {
	p.MoveTo(p.Cursor + delta)
}

// MoveTo places the cursor at i, clamped to the rows.
func (p *Pane) MoveTo(i int) {
	p.Cursor = max(0, min(i, len(p.Rows)-1))
}

// ensureVisible scrolls so the cursor fits in height lines.
func (p *Pane) ensureVisible(height int) {
	if height <= 0 {
		return
	}
	if p.Cursor < p.Offset {
		p.Offset = p.Cursor
	}
	if p.Cursor >= p.Offset+height {
		p.Offset = p.Cursor - height + 1
	}
	p.Offset = max(0, min(p.Offset, len(p.Rows)-height))
}

// removeRow drops row i and keeps the cursor in range.
func (p *Pane) removeRow(i int) {
	if i < 0 || i >= len(p.Rows) {
		return
	}
	p.Rows = append(p.Rows[:i], p.Rows[i+1:]...)
	p.MoveTo(p.Cursor)
}

// setEntries replaces the file listing.
func (p *Pane) setEntries(entries []filebrowser.Entry, path string) {
	p.Entries = entries
	p.Subtitle = path
	p.Rows = make([]library.Row, len(entries))
	for i, e := range entries {
		p.Rows[i] = library.Row{Title: e.Name, DataKind: viewnav.DataFileName, Image: e.Image()}
	}
	p.Cursor, p.Offset = 0, 0
	p.Empty = "Empty folder"
}

// mount places p at its depth, dropping any pane at or above it.
func (m *Model) mount(p Pane) {
	idx := max(0, min(p.Depth-1, len(m.Panes)))
	m.Panes = append(m.Panes[:idx], p)
}

// unmountTop drops the top pane. The root pane stays.
func (m *Model) unmountTop() {
	if len(m.Panes) > 1 {
		m.Panes = m.Panes[:len(m.Panes)-1]
	}
}

// Top returns the pane on top, or nil before the first mount.
func (m *Model) Top() *Pane {
	if len(m.Panes) == 0 {
		return nil
	}
	return &m.Panes[len(m.Panes)-1]
}
