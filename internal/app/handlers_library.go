package app

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/crate/internal/errmsg"
	"github.com/llehouerou/crate/internal/library"
	"github.com/llehouerou/crate/internal/trackmeta"
	"github.com/llehouerou/crate/internal/viewnav"
)

const maxRating = 5

// selectedRow returns the row under the cursor of the top pane when it is
// of kind.
func (m *Model) selectedRow(kind viewnav.DataKind) (library.Row, bool) {
	top := m.Top()
	if top == nil {
		return library.Row{}, false
	}
	row, ok := top.Selected()
	if !ok || row.DataKind != kind {
		return library.Row{}, false
	}
	return row, true
}

// showInfo opens the metadata panel for the selected track or radio.
func (m *Model) showInfo() {
	top := m.Top()
	if top == nil {
		return
	}
	row, ok := top.Selected()
	if !ok {
		return
	}
	switch row.DataKind {
	case viewnav.DataTrack:
		t, err := m.Library.TrackByID(int64(row.ID))
		if err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpLibraryLoad, row.Title, err)
			return
		}
		m.Info = trackmeta.FromTrack(*t)
	case viewnav.DataRadio:
		r, err := m.Library.RadioByID(int64(row.ID))
		if err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpLibraryLoad, row.Title, err)
			return
		}
		m.Info = trackmeta.FromRadio(*r)
	}
}

// rate changes the rating of the selected track by delta stars.
func (m *Model) rate(delta int) {
	row, ok := m.selectedRow(viewnav.DataTrack)
	if !ok {
		return
	}
	t, err := m.Library.TrackByID(int64(row.ID))
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpTrackSave, row.Title, err)
		return
	}

	rating := max(0, min(maxRating, t.Rating+delta))
	if rating == t.Rating {
		return
	}

	meta := trackmeta.FromTrack(*t)
	if _, present := meta.Value(trackmeta.FieldRating); !present {
		if err := meta.Add(trackmeta.FieldRating); err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpTrackSave, row.Title, err)
			return
		}
	}
	if err := meta.Set(trackmeta.FieldRating, strconv.Itoa(rating)); err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpTrackSave, row.Title, err)
		return
	}
	rec, err := meta.Save()
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpTrackSave, row.Title, err)
		return
	}
	updated := rec.ApplyTo(*t)
	if err := m.Library.UpdateTrack(updated); err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpTrackSave, row.Title, err)
		return
	}

	top := m.Top()
	top.Rows[top.Cursor].Rating = updated.Rating
	m.StatusMsg = fmt.Sprintf("Rated %s %d/%d", row.Title, updated.Rating, maxRating)
	m.Logger.Debug("rated track", "id", row.ID, "rating", updated.Rating)
}

// markPlayed records a play of the selected track.
func (m *Model) markPlayed() {
	row, ok := m.selectedRow(viewnav.DataTrack)
	if !ok {
		return
	}
	if err := m.Library.RecordPlay(int64(row.ID), time.Now()); err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpTrackSave, row.Title, err)
		return
	}
	top := m.Top()
	top.Rows[top.Cursor].PlayCount++
	m.StatusMsg = "Marked " + row.Title + " as played"
}

// deleteRadio removes the selected radio.
func (m *Model) deleteRadio() {
	row, ok := m.selectedRow(viewnav.DataRadio)
	if !ok {
		return
	}
	r, err := m.Library.RadioByID(int64(row.ID))
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpRadioDelete, row.Title, err)
		return
	}
	id, ok := trackmeta.FromRadio(*r).DeleteRadio()
	if !ok {
		return
	}
	if err := m.Library.DeleteRadio(id); err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpRadioDelete, row.Title, err)
		return
	}
	top := m.Top()
	top.removeRow(top.Cursor)
	m.StatusMsg = "Deleted " + row.Title
}

// startScan rescans the stored library sources.
func (m *Model) startScan() tea.Cmd {
	if m.Scanning {
		return nil
	}
	sources, err := m.Library.Sources()
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpLibraryScan, err)
		return nil
	}
	if len(sources) == 0 {
		m.StatusMsg = "No library sources configured"
		return nil
	}
	m.Scanning = true
	m.ScanProgress = library.ScanProgress{Phase: library.PhaseScanning}
	m.scanCh, m.scanErr = runScan(m.Library, sources)
	m.Logger.Info("library scan started", "sources", len(sources))
	return m.waitForScan()
}

func (m Model) handleScanProgress(msg ScanProgressMsg) (tea.Model, tea.Cmd) {
	m.ScanProgress = library.ScanProgress(msg)
	return m, m.waitForScan()
}

// handleScanComplete reports the result and reloads the mounted views.
func (m Model) handleScanComplete(msg ScanCompleteMsg) (tea.Model, tea.Cmd) {
	m.Scanning = false
	m.scanCh, m.scanErr = nil, nil
	if msg.Err != nil {
		m.Logger.Error("library scan failed", "err", msg.Err)
		m.ErrorMsg = errmsg.Format(errmsg.OpLibraryScan, msg.Err)
		return m, nil
	}
	if s := m.ScanProgress.Stats; s != nil {
		m.StatusMsg = fmt.Sprintf("Scan done: %d added, %d updated, %d removed", s.Added, s.Updated, s.Removed)
	}
	if m.Loading {
		return m, nil
	}
	return m, m.apply(m.Engine.Replay())
}
