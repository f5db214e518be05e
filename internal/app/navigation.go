package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/crate/internal/errmsg"
	"github.com/llehouerou/crate/internal/state"
	"github.com/llehouerou/crate/internal/viewnav"
)

// apply acts on engine events in order. Pops are immediate; activations
// are fetched together and mounted when panesLoadedMsg arrives.
func (m *Model) apply(events []viewnav.Event) tea.Cmd {
	var activations []viewnav.Event
	for _, ev := range events {
		if _, ok := ev.(viewnav.PopRequested); ok {
			m.unmountTop()
			continue
		}
		activations = append(activations, ev)
	}
	if len(activations) == 0 {
		return nil
	}
	m.Loading = true
	return loadPanesCmd(m.Library, m.HistoryLimit, activations)
}

// handlePanesLoaded mounts the fetched views, then lets the engine
// activate a staged child.
func (m Model) handlePanesLoaded(msg panesLoadedMsg) (tea.Model, tea.Cmd) {
	for _, p := range msg.panes {
		if p.IsFiles {
			if err := m.Files.Refresh(); err != nil {
				p.Err = errmsg.FormatWith(errmsg.OpFolderLoad, m.Files.Path(), err)
			}
			p.setEntries(m.Files.Entries(), m.Files.Path())
		}
		p.ensureVisible(m.listHeight())
		m.mount(p)
		if p.Depth == 1 {
			m.saveNavigation()
		}
	}
	m.Loading = false
	return m, m.apply(m.Engine.ConfirmViewLoaded())
}

// selectView switches to the top-level view at menu position index.
func (m *Model) selectView(index int) tea.Cmd {
	if m.Loading {
		return nil
	}
	events, err := m.Engine.SelectTopLevelAt(index)
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpViewSelect, err)
		return nil
	}
	return m.apply(events)
}

// cycleView moves the top-level selection by delta, wrapping around.
func (m *Model) cycleView(delta int) tea.Cmd {
	n := m.Engine.Catalog().Len()
	return m.selectView(((m.Engine.TopLevelIndex()+delta)%n + n) % n)
}

// openSelected drills into the row under the cursor. In the file browser
// it enters directories instead.
func (m *Model) openSelected() tea.Cmd {
	top := m.Top()
	if top == nil || m.Loading {
		return nil
	}
	if top.IsFiles {
		return m.openEntry(top)
	}
	row, ok := top.Selected()
	if !ok {
		return nil
	}
	events, err := m.Engine.OpenChild(row.Child())
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpViewChild, row.Title, err)
	}
	return m.apply(events)
}

func (m *Model) openEntry(p *Pane) tea.Cmd {
	e, ok := p.SelectedEntry()
	if !ok {
		return nil
	}
	entered, err := m.Files.Open(e)
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpFolderLoad, e.Path, err)
		return nil
	}
	if entered {
		p.setEntries(m.Files.Entries(), m.Files.Path())
		m.saveNavigation()
	}
	return nil
}

// goBack pops the top view. The file browser climbs to the parent folder
// first. Going back from a root view does nothing.
func (m *Model) goBack() tea.Cmd {
	top := m.Top()
	if top == nil || m.Loading {
		return nil
	}
	if top.IsFiles {
		up, err := m.Files.Up()
		if err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpFolderLoad, m.Files.Path(), err)
			return nil
		}
		if up {
			top.setEntries(m.Files.Entries(), m.Files.Path())
			m.saveNavigation()
			return nil
		}
	}

	events, err := m.Engine.GoBack()
	if errors.Is(err, viewnav.ErrUnderflow) {
		return nil
	}
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpViewBack, err)
		return nil
	}
	return m.apply(events)
}

// saveNavigation persists the root view and the browsed folder.
func (m *Model) saveNavigation() {
	stack := m.Engine.Stack()
	if len(stack) == 0 {
		return
	}
	m.StateMgr.SaveNavigation(state.NavigationState{
		TopLevelView: stack[0].Kind.String(),
		FolderPath:   m.Files.Path(),
	})
}
