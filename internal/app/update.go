package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/crate/internal/keymap"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		cmd := m.start()
		return m, cmd

	case panesLoadedMsg:
		return m.handlePanesLoaded(msg)

	case ScanProgressMsg:
		return m.handleScanProgress(msg)

	case ScanCompleteMsg:
		return m.handleScanComplete(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey dispatches a key press. Overlays take keys first; any key
// clears the previous message.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.ResolveMsg(msg)
	if action == keymap.ActionQuit {
		return m, tea.Quit
	}
	m.ErrorMsg = ""
	m.StatusMsg = ""

	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}
	if m.Info != nil {
		if action == keymap.ActionInfo || msg.Type == tea.KeyEsc || action == keymap.ActionBack {
			m.Info = nil
		}
		return m, nil
	}

	if index, ok := keymap.ViewIndex(msg.String()); ok {
		cmd := m.selectView(index)
		return m, cmd
	}

	var cmd tea.Cmd
	switch action {
	case keymap.ActionHelp:
		m.ShowHelp = true
	case keymap.ActionRescan:
		cmd = m.startScan()
	case keymap.ActionNextView:
		cmd = m.cycleView(1)
	case keymap.ActionPrevView:
		cmd = m.cycleView(-1)
	case keymap.ActionOpen:
		cmd = m.openSelected()
	case keymap.ActionBack:
		cmd = m.goBack()
	case keymap.ActionInfo:
		m.showInfo()
	case keymap.ActionRateUp:
		m.rate(1)
	case keymap.ActionRateDown:
		m.rate(-1)
	case keymap.ActionMarkPlayed:
		m.markPlayed()
	case keymap.ActionDelete:
		m.deleteRadio()
	default:
		m.moveCursor(action)
	}
	return m, cmd
}

func (m *Model) moveCursor(action keymap.Action) {
	top := m.Top()
	if top == nil {
		return
	}
	page := max(1, m.listHeight())
	switch action {
	case keymap.ActionMoveUp:
		top.Move(-1)
	case keymap.ActionMoveDown:
		top.Move(1)
	case keymap.ActionJumpStart:
		top.MoveTo(0)
	case keymap.ActionJumpEnd:
		top.MoveTo(len(top.Rows) - 1)
	case keymap.ActionPageUp:
		top.Move(-page)
	case keymap.ActionPageDown:
		top.Move(page)
	default:
		return
	}
	top.ensureVisible(m.listHeight())
}
